package handlers

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
)

// NewRouter mounts every endpoint of h. API responses allow any origin and
// preflight requests are answered before they reach a handler.
func NewRouter(h *HTTPHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware(h.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	r.HandleFunc("/maintenance/ping", h.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/api/posts", h.HandleListPosts).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/posts", h.HandleCreatePost).Methods(http.MethodPost)
	r.HandleFunc("/api/posts/{postId}", h.HandleGetPost).Methods(http.MethodGet, http.MethodOptions)
	r.HandleFunc("/api/posts/{postId}", h.HandleDeletePost).Methods(http.MethodDelete)
	r.HandleFunc(PagesPrefix, h.HandlePage).Methods(http.MethodGet)
	r.PathPrefix(PagesPrefix + "/").HandlerFunc(h.HandlePage).Methods(http.MethodGet)

	return r
}
