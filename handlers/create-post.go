package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"blog/storage"
	"blog/storage/models"
)

const maxPostBodyBytes = 1 << 20

type CreatePostRequestData struct {
	models.Post
}

func (h *HTTPHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPostBodyBytes)
	var data CreatePostRequestData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.Logger.Info("failed to decode post data", zap.Error(err))
		h.writeMessage(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return
	}
	data.Id = ""
	if err := data.Validate(); err != nil {
		h.writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.Storage.AddPost(r.Context(), data.Post)
	if err != nil {
		if errors.Is(err, storage.ClientError) {
			h.Logger.Info("client error while creating post", zap.Error(err))
			h.writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		h.Logger.Error("failed to add post", zap.Error(err))
		h.writeMessage(w, http.StatusInternalServerError, INTERNAL_ERROR_MESSAGE)
		return
	}
	h.Logger.Info("created post", zap.String("postId", post.Id))
	h.writeJSON(w, http.StatusCreated, post)
}
