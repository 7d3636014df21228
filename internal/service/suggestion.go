package service

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/whisperlink-dev/whisperlink/internal/logger"
)

type Suggester interface {
	Suggest(ctx context.Context, postText string) ([]string, error)
}

// Suggestion fetches candidate supportive replies for a post. Best-effort
// enrichment: failures become an empty list, never an error. Concurrent
// requests for the same post share one underlying call.
type Suggestion struct {
	suggester Suggester
	timeout   time.Duration
	group     singleflight.Group
}

func NewSuggestion(suggester Suggester, timeout time.Duration) *Suggestion {
	return &Suggestion{suggester: suggester, timeout: timeout}
}

// ForPost returns suggested replies for the given post text, or an empty
// slice when the underlying call fails. The call is detached from the
// caller's context: an abandoned request finishes on its own and its result
// is simply discarded by whoever no longer wants it.
func (s *Suggestion) ForPost(postId, postText string) []string {
	v, err, _ := s.group.Do(postId, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		return s.suggester.Suggest(ctx, postText)
	})
	if err != nil {
		logger.Log.Warn("suggestion fetch failed", "postId", postId, "error", err)
		return []string{}
	}

	suggestions, ok := v.([]string)
	if !ok || suggestions == nil {
		return []string{}
	}
	return suggestions
}
