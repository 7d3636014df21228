package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whisperlink-dev/whisperlink/internal/domain"
	"github.com/whisperlink-dev/whisperlink/internal/errors"
	"github.com/whisperlink-dev/whisperlink/internal/service"
)

// Mock services
type MockSubmissionService struct {
	MockSubmitPost     func(ctx context.Context, text string) (*domain.Post, error)
	MockSubmitResponse func(ctx context.Context, postId domain.PostId, text string) (*domain.Response, error)
}

func (m *MockSubmissionService) SubmitPost(ctx context.Context, text string) (*domain.Post, error) {
	if m.MockSubmitPost != nil {
		return m.MockSubmitPost(ctx, text)
	}
	return &domain.Post{Id: "post-1", Text: text, Responses: []domain.Response{}}, nil
}

func (m *MockSubmissionService) SubmitResponse(ctx context.Context, postId domain.PostId, text string) (*domain.Response, error) {
	if m.MockSubmitResponse != nil {
		return m.MockSubmitResponse(ctx, postId, text)
	}
	return &domain.Response{Id: "resp-1", Text: text}, nil
}

type MockWallService struct {
	MockAddPost     func(post *domain.Post)
	MockAddResponse func(postId domain.PostId, response *domain.Response) error
	MockPostText    func(postId domain.PostId) (string, error)
	MockRecluster   func() bool
	MockView        func() service.WallView
}

func (m *MockWallService) AddPost(post *domain.Post) {
	if m.MockAddPost != nil {
		m.MockAddPost(post)
	}
}

func (m *MockWallService) AddResponse(postId domain.PostId, response *domain.Response) error {
	if m.MockAddResponse != nil {
		return m.MockAddResponse(postId, response)
	}
	return nil
}

func (m *MockWallService) PostText(postId domain.PostId) (string, error) {
	if m.MockPostText != nil {
		return m.MockPostText(postId)
	}
	return "some text", nil
}

func (m *MockWallService) Recluster() bool {
	if m.MockRecluster != nil {
		return m.MockRecluster()
	}
	return true
}

func (m *MockWallService) View() service.WallView {
	if m.MockView != nil {
		return m.MockView()
	}
	return service.WallView{Posts: []*domain.Post{}, Clusters: []domain.ThemeCluster{}}
}

type MockSuggestionService struct {
	MockForPost func(postId, postText string) []string
}

func (m *MockSuggestionService) ForPost(postId, postText string) []string {
	if m.MockForPost != nil {
		return m.MockForPost(postId, postText)
	}
	return []string{}
}

func setupTestRouter(submission SubmissionService, wall WallService, suggestion SuggestionService) *chi.Mux {
	h := New(submission, wall, suggestion)

	r := chi.NewRouter()
	r.Get("/v1/wall", h.GetWall)
	r.Post("/v1/posts", h.CreatePost)
	r.Post("/v1/posts/{post}/responses", h.CreateResponse)
	r.Get("/v1/posts/{post}/suggestions", h.GetSuggestions)
	r.Post("/v1/recluster", h.Recluster)
	r.Get("/health", h.Health)
	return r
}

func TestCreatePostHandler(t *testing.T) {
	t.Run("successful request inserts into wall", func(t *testing.T) {
		var added *domain.Post
		wall := &MockWallService{MockAddPost: func(p *domain.Post) { added = p }}
		router := setupTestRouter(&MockSubmissionService{}, wall, &MockSuggestionService{})

		req := httptest.NewRequest(http.MethodPost, "/v1/posts", bytes.NewBufferString(`{"text": "feeling anxious"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		require.NotNil(t, added)
		assert.Equal(t, "feeling anxious", added.Text)
		assert.Contains(t, rr.Body.String(), service.PostAcceptedMessage)
		assert.Contains(t, rr.Body.String(), `"id":"post-1"`)
	})

	t.Run("invalid json", func(t *testing.T) {
		router := setupTestRouter(&MockSubmissionService{}, &MockWallService{}, &MockSuggestionService{})

		req := httptest.NewRequest(http.MethodPost, "/v1/posts", bytes.NewBufferString(`{invalid`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Body is invalid json")
	})

	t.Run("missing text field", func(t *testing.T) {
		router := setupTestRouter(&MockSubmissionService{}, &MockWallService{}, &MockSuggestionService{})

		req := httptest.NewRequest(http.MethodPost, "/v1/posts", bytes.NewBufferString(`{}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("flagged post returns 422 and does not touch the wall", func(t *testing.T) {
		submission := &MockSubmissionService{
			MockSubmitPost: func(ctx context.Context, text string) (*domain.Post, error) {
				return nil, errors.Rejection(service.PostFlaggedMessage, 422)
			},
		}
		wall := &MockWallService{MockAddPost: func(p *domain.Post) { t.Error("AddPost must not be called") }}
		router := setupTestRouter(submission, wall, &MockSuggestionService{})

		req := httptest.NewRequest(http.MethodPost, "/v1/posts", bytes.NewBufferString(`{"text": "bad"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, 422, rr.Code)
		assert.Contains(t, rr.Body.String(), "flagged as high-risk")
	})

	t.Run("moderation unavailable returns 503", func(t *testing.T) {
		submission := &MockSubmissionService{
			MockSubmitPost: func(ctx context.Context, text string) (*domain.Post, error) {
				return nil, errors.Unavailable(service.CouldNotVerifyMessage)
			},
		}
		router := setupTestRouter(submission, &MockWallService{}, &MockSuggestionService{})

		req := httptest.NewRequest(http.MethodPost, "/v1/posts", bytes.NewBufferString(`{"text": "hello"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		assert.Contains(t, rr.Body.String(), "Could not verify")
	})
}

func TestCreateResponseHandler(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		var attachedTo domain.PostId
		wall := &MockWallService{
			MockAddResponse: func(postId domain.PostId, response *domain.Response) error {
				attachedTo = postId
				return nil
			},
		}
		router := setupTestRouter(&MockSubmissionService{}, wall, &MockSuggestionService{})

		req := httptest.NewRequest(http.MethodPost, "/v1/posts/post-1/responses", bytes.NewBufferString(`{"text": "you got this"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "post-1", attachedTo)
		assert.Contains(t, rr.Body.String(), service.ResponseAcceptedMessage)
	})

	t.Run("unknown post is 404 before moderation", func(t *testing.T) {
		wall := &MockWallService{
			MockPostText: func(postId domain.PostId) (string, error) {
				return "", &errors.ErrorWithStatusCode{Message: "Whisper not found", StatusCode: 404}
			},
		}
		submission := &MockSubmissionService{
			MockSubmitResponse: func(ctx context.Context, postId domain.PostId, text string) (*domain.Response, error) {
				t.Error("SubmitResponse must not be called for unknown post")
				return nil, nil
			},
		}
		router := setupTestRouter(submission, wall, &MockSuggestionService{})

		req := httptest.NewRequest(http.MethodPost, "/v1/posts/nope/responses", bytes.NewBufferString(`{"text": "hi"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("flagged response returns 422", func(t *testing.T) {
		submission := &MockSubmissionService{
			MockSubmitResponse: func(ctx context.Context, postId domain.PostId, text string) (*domain.Response, error) {
				return nil, errors.Rejection(service.ResponseFlaggedMessage, 422)
			},
		}
		router := setupTestRouter(submission, &MockWallService{}, &MockSuggestionService{})

		req := httptest.NewRequest(http.MethodPost, "/v1/posts/post-1/responses", bytes.NewBufferString(`{"text": "mean"}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, 422, rr.Code)
		assert.Contains(t, rr.Body.String(), "supportive and safe")
	})
}

func TestGetSuggestionsHandler(t *testing.T) {
	t.Run("returns suggestions for known post", func(t *testing.T) {
		suggestion := &MockSuggestionService{
			MockForPost: func(postId, postText string) []string {
				assert.Equal(t, "post-1", postId)
				assert.Equal(t, "some text", postText)
				return []string{"I hear you.", "That sounds hard."}
			},
		}
		router := setupTestRouter(&MockSubmissionService{}, &MockWallService{}, suggestion)

		req := httptest.NewRequest(http.MethodGet, "/v1/posts/post-1/suggestions", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Suggestions []string `json:"suggestions"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, []string{"I hear you.", "That sounds hard."}, body.Suggestions)
	})

	t.Run("empty list when suggestions unavailable", func(t *testing.T) {
		router := setupTestRouter(&MockSubmissionService{}, &MockWallService{}, &MockSuggestionService{})

		req := httptest.NewRequest(http.MethodGet, "/v1/posts/post-1/suggestions", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"suggestions": []}`, rr.Body.String())
	})

	t.Run("unknown post is 404", func(t *testing.T) {
		wall := &MockWallService{
			MockPostText: func(postId domain.PostId) (string, error) {
				return "", &errors.ErrorWithStatusCode{Message: "Whisper not found", StatusCode: 404}
			},
		}
		router := setupTestRouter(&MockSubmissionService{}, wall, &MockSuggestionService{})

		req := httptest.NewRequest(http.MethodGet, "/v1/posts/nope/suggestions", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestGetWallHandler(t *testing.T) {
	wall := &MockWallService{
		MockView: func() service.WallView {
			p := &domain.Post{Id: "a", Text: "hi", Responses: []domain.Response{}}
			return service.WallView{
				Posts:      []*domain.Post{p},
				Clusters:   []domain.ThemeCluster{{Theme: "Greetings", Posts: []*domain.Post{p}}},
				Clustering: false,
			}
		},
	}
	router := setupTestRouter(&MockSubmissionService{}, wall, &MockSuggestionService{})

	req := httptest.NewRequest(http.MethodGet, "/v1/wall", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"theme":"Greetings"`)
	assert.Contains(t, rr.Body.String(), `"clustering":false`)
}

func TestReclusterHandler(t *testing.T) {
	t.Run("trigger accepted", func(t *testing.T) {
		router := setupTestRouter(&MockSubmissionService{}, &MockWallService{}, &MockSuggestionService{})

		req := httptest.NewRequest(http.MethodPost, "/v1/recluster", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusAccepted, rr.Code)
		assert.Contains(t, rr.Body.String(), `"started":true`)
	})

	t.Run("trigger ignored while clustering in flight", func(t *testing.T) {
		wall := &MockWallService{MockRecluster: func() bool { return false }}
		router := setupTestRouter(&MockSubmissionService{}, wall, &MockSuggestionService{})

		req := httptest.NewRequest(http.MethodPost, "/v1/recluster", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusAccepted, rr.Code)
		assert.Contains(t, rr.Body.String(), `"started":false`)
	})
}

func TestHealthHandler(t *testing.T) {
	router := setupTestRouter(&MockSubmissionService{}, &MockWallService{}, &MockSuggestionService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}
