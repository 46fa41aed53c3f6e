package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

func (h *HTTPHandler) HandleListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Storage.ListPosts(r.Context())
	if err != nil {
		h.Logger.Error("failed to list posts", zap.Error(err))
		h.writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeJSON(w, http.StatusOK, posts)
}
