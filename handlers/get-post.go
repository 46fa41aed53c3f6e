package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"blog/storage"
)

func (h *HTTPHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	postId := mux.Vars(r)["postId"]
	post, err := h.Storage.GetPost(r.Context(), postId)
	if err != nil {
		if errors.Is(err, storage.NotFoundError) {
			h.writeMessage(w, http.StatusNotFound, "Post not found")
			return
		}
		h.Logger.Error("failed to get post", zap.String("postId", postId), zap.Error(err))
		h.writeMessage(w, http.StatusInternalServerError, INTERNAL_ERROR_MESSAGE)
		return
	}
	h.writeJSON(w, http.StatusOK, post)
}
