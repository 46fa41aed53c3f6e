package handlers

import (
	"net/http"
	"strings"

	"blog/views"
)

const PagesPrefix = "/pages"

// HandlePage renders the client view addressed by the path after /pages.
// Query parameters q and sort seed the view state of a fresh session; sort
// is only read by views that order posts.
func (h *HTTPHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.EscapedPath(), PagesPrefix)
	nav := views.NewNavigator(h.Routes, h.Renderer)
	route := nav.Navigate(path)

	q := r.URL.Query()
	nav.SetQuery(q.Get("q"))
	if route.Sorted() {
		if err := nav.SetSort(q.Get("sort")); err != nil {
			h.writeMessage(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	h.writeJSON(w, http.StatusOK, nav.Page())
}
