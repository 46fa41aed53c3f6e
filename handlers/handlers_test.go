package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"blog/content"
	"blog/storage"
	"blog/storage/in_memory"
	"blog/storage/models"
	"blog/views"
)

type failingStorage struct{}

func (failingStorage) ListPosts(context.Context) ([]models.Post, error) {
	return nil, fmt.Errorf("connection refused: %w", storage.InternalError)
}

func (failingStorage) AddPost(context.Context, models.Post) (models.Post, error) {
	return models.Post{}, fmt.Errorf("connection refused: %w", storage.InternalError)
}

func (failingStorage) GetPost(context.Context, string) (models.Post, error) {
	return models.Post{}, fmt.Errorf("connection refused: %w", storage.InternalError)
}

func (failingStorage) DeletePost(context.Context, string) error {
	return fmt.Errorf("connection refused: %w", storage.InternalError)
}

func newTestRouter(t *testing.T, store storage.Storage) http.Handler {
	t.Helper()
	posts, err := content.Default()
	require.NoError(t, err)
	h := &HTTPHandler{
		Storage:  store,
		Routes:   views.NewRoutes(),
		Renderer: views.NewRenderer(posts),
		Logger:   zap.NewNop(),
	}
	return NewRouter(h)
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var m MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m.Message
}

func TestCreatePostInvalidJSON(t *testing.T) {
	r := newTestRouter(t, in_memory.CreateInMemoryStorage())
	w := serve(r, http.MethodPost, "/api/posts", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeMessage(t, w), "Invalid JSON body")
}

func TestCreatePostReportsEveryMissingField(t *testing.T) {
	r := newTestRouter(t, in_memory.CreateInMemoryStorage())
	w := serve(r, http.MethodPost, "/api/posts", `{"title":"only a title"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	msg := decodeMessage(t, w)
	for _, field := range []string{"excerpt", "content", "author", "category", "readTime"} {
		assert.Contains(t, msg, field)
	}
	assert.NotContains(t, msg, "title")
}

func TestCreatePostIgnoresClientId(t *testing.T) {
	r := newTestRouter(t, in_memory.CreateInMemoryStorage())
	w := serve(r, http.MethodPost, "/api/posts", `{
		"id": "chosen-by-client", "title": "t", "excerpt": "e", "content": "c",
		"author": "a", "category": "Fitness", "readTime": "1 min read"
	}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var p models.Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.NotEqual(t, "chosen-by-client", p.Id)
	assert.NotEmpty(t, p.Id)
}

func TestStorageFailures(t *testing.T) {
	r := newTestRouter(t, failingStorage{})

	w := serve(r, http.MethodGet, "/api/posts", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decodeMessage(t, w), "connection refused")

	w = serve(r, http.MethodPost, "/api/posts", `{
		"title": "t", "excerpt": "e", "content": "c",
		"author": "a", "category": "Fitness", "readTime": "1 min read"
	}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, INTERNAL_ERROR_MESSAGE, decodeMessage(t, w))

	w = serve(r, http.MethodGet, "/api/posts/1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = serve(r, http.MethodDelete, "/api/posts/1", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func preflight(h http.Handler, target, method, headers string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodOptions, target, nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", method)
	if headers != "" {
		req.Header.Set("Access-Control-Request-Headers", headers)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestPreflight(t *testing.T) {
	r := newTestRouter(t, in_memory.CreateInMemoryStorage())

	w := preflight(r, "/api/posts", http.MethodPost, "content-type, authorization")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.MethodPost, w.Header().Get("Access-Control-Allow-Methods"))
	allowed := strings.ToLower(w.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, allowed, "content-type")
	assert.Contains(t, allowed, "authorization")
	assert.Empty(t, w.Body.String())

	w = preflight(r, "/api/posts/123", http.MethodDelete, "x-requested-with")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.MethodDelete, w.Header().Get("Access-Control-Allow-Methods"))
	assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Allow-Headers")), "x-requested-with")
}

func TestCORSOnActualRequest(t *testing.T) {
	r := newTestRouter(t, in_memory.CreateInMemoryStorage())
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPages(t *testing.T) {
	r := newTestRouter(t, in_memory.CreateInMemoryStorage())

	cases := []struct {
		target   string
		view     views.View
		notFound bool
		posts    int
	}{
		{"/pages", views.Home, false, 0},
		{"/pages/", views.Home, false, 0},
		{"/pages/about", views.About, false, 0},
		{"/pages/science", views.Science, false, 0},
		{"/pages/engineering", views.Engineering, false, 0},
		{"/pages/category/fitness?sort=title", views.CategoryDetail, false, 1},
		{"/pages/category/Cooking", views.CategoryDetail, false, 0},
		{"/pages/blog?q=recovery", views.Blog, false, 1},
		{"/pages/blog/4", views.PostDetail, false, 0},
		{"/pages/blog/5", views.PostDetail, true, 0},
		{"/pages/does/not/exist", views.NotFound, true, 0},
	}
	for _, c := range cases {
		t.Run(c.target, func(t *testing.T) {
			w := serve(r, http.MethodGet, c.target, "")
			require.Equal(t, http.StatusOK, w.Code)
			var page views.Page
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
			assert.Equal(t, c.view, page.Route.View)
			assert.Equal(t, c.notFound, page.NotFound)
			assert.Len(t, page.Posts, c.posts)
		})
	}
}

func TestPageRejectsUnknownSort(t *testing.T) {
	r := newTestRouter(t, in_memory.CreateInMemoryStorage())
	for _, target := range []string{"/pages/blog?sort=popularity", "/pages/category/Fitness?sort=popularity"} {
		w := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, decodeMessage(t, w), "unknown sort key")
	}
}

func TestPageIgnoresSortOnUnsortedViews(t *testing.T) {
	r := newTestRouter(t, in_memory.CreateInMemoryStorage())
	for _, target := range []string{"/pages/about?sort=bogus", "/pages/blog/4?sort=bogus", "/pages?sort=bogus"} {
		w := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusOK, w.Code, target)
	}
}

func TestPagesPrefixIsSegmentBound(t *testing.T) {
	r := newTestRouter(t, in_memory.CreateInMemoryStorage())
	for _, target := range []string{"/pagesxyz", "/pagesxyz/blog"} {
		w := serve(r, http.MethodGet, target, "")
		assert.Equal(t, http.StatusNotFound, w.Code, target)
	}
}

func TestPageCategoryWithEncodedSlash(t *testing.T) {
	r := newTestRouter(t, in_memory.CreateInMemoryStorage())
	w := serve(r, http.MethodGet, "/pages/category/A%2FB", "")
	require.Equal(t, http.StatusOK, w.Code)
	var page views.Page
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, views.CategoryDetail, page.Route.View)
	assert.Equal(t, "A/B", page.Route.Param("category"))
	assert.Empty(t, page.Posts)
}
