package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/whisperlink-dev/whisperlink/internal/domain"
	"github.com/whisperlink-dev/whisperlink/internal/logger"
	"github.com/whisperlink-dev/whisperlink/internal/service"
)

type SubmissionService interface {
	SubmitPost(ctx context.Context, text string) (*domain.Post, error)
	SubmitResponse(ctx context.Context, postId domain.PostId, text string) (*domain.Response, error)
}

type WallService interface {
	AddPost(post *domain.Post)
	AddResponse(postId domain.PostId, response *domain.Response) error
	PostText(postId domain.PostId) (string, error)
	Recluster() bool
	View() service.WallView
}

type SuggestionService interface {
	ForPost(postId, postText string) []string
}

type Handler struct {
	submission SubmissionService
	wall       WallService
	suggestion SuggestionService
}

func New(submission SubmissionService, wall WallService, suggestion SuggestionService) *Handler {
	return &Handler{submission, wall, suggestion}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
