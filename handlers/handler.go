package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"blog/storage"
	"blog/views"
)

const INTERNAL_ERROR_MESSAGE = "Internal server error"

type HTTPHandler struct {
	Storage  storage.Storage
	Routes   *views.Routes
	Renderer *views.Renderer
	Logger   *zap.Logger
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (h *HTTPHandler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		h.Logger.Error("failed to dump response to json", zap.Error(err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"` + INTERNAL_ERROR_MESSAGE + `"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(raw); err != nil {
		h.Logger.Warn("failed to write response", zap.Error(err))
	}
}

func (h *HTTPHandler) writeMessage(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, MessageResponse{Message: message})
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
