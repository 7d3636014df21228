package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/whisperlink-dev/whisperlink/internal/service"
	"github.com/whisperlink-dev/whisperlink/internal/utils"
)

func (h *Handler) CreateResponse(w http.ResponseWriter, r *http.Request) {
	postId := chi.URLParam(r, "post")

	// reject unknown posts before spending a moderation call
	if _, err := h.wall.PostText(postId); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	type bodyJson struct {
		Text string `validate:"required" json:"text"`
	}
	var body bodyJson
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response, err := h.submission.SubmitResponse(r.Context(), postId, body.Text)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.wall.AddResponse(postId, response); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  service.ResponseAcceptedMessage,
		"response": response,
	})
}
