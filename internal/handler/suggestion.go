package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/whisperlink-dev/whisperlink/internal/utils"
)

// GetSuggestions returns AI-suggested replies for a post. Best-effort: an
// empty list means no suggestions are available and the client keeps its
// free-text form.
func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	postId := chi.URLParam(r, "post")

	postText, err := h.wall.PostText(postId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	suggestions := h.suggestion.ForPost(postId, postText)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
	})
}
