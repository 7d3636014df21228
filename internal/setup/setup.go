package setup

import (
	"context"

	"github.com/whisperlink-dev/whisperlink/internal/ai"
	"github.com/whisperlink-dev/whisperlink/internal/config"
	"github.com/whisperlink-dev/whisperlink/internal/domain"
	"github.com/whisperlink-dev/whisperlink/internal/handler"
	"github.com/whisperlink-dev/whisperlink/internal/service"
	"github.com/whisperlink-dev/whisperlink/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config  *config.Config
	Wall    *service.Wall
	Handler *handler.Handler
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	client, err := ai.New(ctx, cfg.Private.GeminiApiKey, cfg.Public.Model)
	if err != nil {
		return nil, err
	}

	submission := service.NewSubmission(
		client,
		&utils.PostTextValidator{MaxLength: cfg.Public.MaxPostLength},
		&utils.ResponseTextValidator{MaxLength: cfg.Public.MaxResponseLength},
		cfg.Public.ModerationTimeout,
	)
	suggestion := service.NewSuggestion(client, cfg.Public.SuggestTimeout)

	var seed []*domain.Post
	if cfg.Public.SeedDemoData {
		seed = service.SeedPosts()
	}
	wall := service.NewWall(client, cfg.Public.ClusterTimeout, seed)
	if len(seed) > 0 {
		// initial clustering pass; failure degrades to the fallback theme
		wall.Recluster()
	}

	h := handler.New(submission, wall, suggestion)

	return &Dependencies{
		Config:  cfg,
		Wall:    wall,
		Handler: h,
	}, nil
}
