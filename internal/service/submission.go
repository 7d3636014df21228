package service

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/whisperlink-dev/whisperlink/internal/domain"
	"github.com/whisperlink-dev/whisperlink/internal/errors"
	"github.com/whisperlink-dev/whisperlink/internal/logger"
	"github.com/whisperlink-dev/whisperlink/internal/utils"
)

// User-facing messages, fixed by the reference behavior.
const (
	PostFlaggedMessage = "This post has been flagged as high-risk and cannot be posted. If you are in crisis, please seek help immediately."

	ResponseFlaggedMessage = "This response has been flagged as high-risk and cannot be posted. Please keep responses supportive and safe."

	CouldNotVerifyMessage = "Could not verify your submission right now. Please try again later."

	PostAcceptedMessage     = "Your whisper has been posted."
	ResponseAcceptedMessage = "Your response has been added."
)

var submissionsFlagged = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "submissions_flagged_total",
		Help: "Total number of submissions rejected by moderation",
	},
	[]string{"kind"},
)

type ModerationGate interface {
	Moderate(ctx context.Context, text string) (domain.ModerationVerdict, error)
}

type TextValidator interface {
	Text(text string) error
}

// Submission builds accepted posts and responses. It never inserts them into
// any shared collection; the wall does that. Its only side effect is the
// moderation call.
type Submission struct {
	gate              ModerationGate
	postValidator     TextValidator
	responseValidator TextValidator
	moderationTimeout time.Duration
}

func NewSubmission(gate ModerationGate, postValidator, responseValidator TextValidator, moderationTimeout time.Duration) *Submission {
	return &Submission{gate, postValidator, responseValidator, moderationTimeout}
}

// SubmitPost validates and moderates text, returning a fresh Post on success.
// Validation failures reject without invoking the moderation gate.
func (s *Submission) SubmitPost(ctx context.Context, text string) (*domain.Post, error) {
	text = utils.Sanitize(text)
	if err := s.postValidator.Text(text); err != nil {
		return nil, err
	}

	if err := s.moderate(ctx, text, "post", PostFlaggedMessage); err != nil {
		return nil, err
	}

	return &domain.Post{
		Id:        utils.NewPostId(),
		Text:      text,
		Responses: []domain.Response{},
		CreatedAt: time.Now().UTC(),
	}, nil
}

// SubmitResponse is the same contract for responses. The parent post is not
// touched here; attaching the response is the caller's job.
func (s *Submission) SubmitResponse(ctx context.Context, postId domain.PostId, text string) (*domain.Response, error) {
	text = utils.Sanitize(text)
	if err := s.responseValidator.Text(text); err != nil {
		return nil, err
	}

	if err := s.moderate(ctx, text, "response", ResponseFlaggedMessage); err != nil {
		return nil, err
	}

	return &domain.Response{
		Id:        utils.NewResponseId(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// moderate fails closed: a gate failure blocks acceptance and surfaces as a
// 503, distinct from the 422 a flagged verdict produces.
func (s *Submission) moderate(ctx context.Context, text, kind, flaggedMessage string) error {
	ctx, cancel := context.WithTimeout(ctx, s.moderationTimeout)
	defer cancel()

	verdict, err := s.gate.Moderate(ctx, text)
	if err != nil {
		logger.Log.Error("moderation gate failed", "kind", kind, "error", err)
		return errors.Unavailable(CouldNotVerifyMessage)
	}
	if verdict.IsHighRisk {
		logger.Log.Info("submission flagged as high-risk", "kind", kind, "reason", verdict.Reason)
		submissionsFlagged.WithLabelValues(kind).Inc()
		return errors.Rejection(flaggedMessage, 422)
	}
	return nil
}
