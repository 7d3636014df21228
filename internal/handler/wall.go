package handler

import (
	"net/http"
)

func (h *Handler) GetWall(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.wall.View())
}

// Recluster manually triggers a clustering run. A trigger while one is
// already in flight is ignored, never run concurrently.
func (h *Handler) Recluster(w http.ResponseWriter, r *http.Request) {
	started := h.wall.Recluster()
	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"started": started,
	})
}
