package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// HandleDeletePost reports success whether or not the post existed.
func (h *HTTPHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	postId := mux.Vars(r)["postId"]
	if err := h.Storage.DeletePost(r.Context(), postId); err != nil {
		h.Logger.Error("failed to delete post", zap.String("postId", postId), zap.Error(err))
		h.writeMessage(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.writeMessage(w, http.StatusOK, "Post deleted")
}
