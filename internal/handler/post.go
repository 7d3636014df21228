package handler

import (
	"net/http"

	"github.com/whisperlink-dev/whisperlink/internal/service"
	"github.com/whisperlink-dev/whisperlink/internal/utils"
)

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	type bodyJson struct {
		Text string `validate:"required" json:"text"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	post, err := h.submission.SubmitPost(r.Context(), body.Text)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// insertion is the wall's job; the pipeline only built the post
	h.wall.AddPost(post)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": service.PostAcceptedMessage,
		"post":    post,
	})
}
