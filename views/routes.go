// Package views maps client paths to named views and renders each view to a
// page model built from the content store.
package views

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
)

// View names a path addressable page.
type View string

const (
	Home           View = "home"
	Categories     View = "categories"
	CategoryDetail View = "category"
	Science        View = "science"
	Engineering    View = "engineering"
	Blog           View = "blog"
	PostDetail     View = "post"
	About          View = "about"
	NotFound       View = "notFound"
)

// Route is the outcome of resolving a path: a view plus its path parameters.
type Route struct {
	View   View              `json:"view"`
	Params map[string]string `json:"params,omitempty"`
}

// Sorted reports whether the view honours the session sort key.
func (r Route) Sorted() bool {
	return r.View == Blog || r.View == CategoryDetail
}

// Param returns a path parameter or "".
func (r Route) Param(name string) string {
	return r.Params[name]
}

// Routes is the client route table.
type Routes struct {
	router *mux.Router
}

// NewRoutes builds the route table:
//
//	/                     Home
//	/categories           Categories
//	/category/{category}  CategoryDetail
//	/science              Science
//	/engineering          Engineering
//	/blog                 Blog
//	/blog/{id}            PostDetail
//	/about                About
//
// Matching runs on the escaped path so a parameter may contain an encoded
// slash.
func NewRoutes() *Routes {
	r := mux.NewRouter().UseEncodedPath()
	r.Path("/").Name(string(Home))
	r.Path("/categories").Name(string(Categories))
	r.Path("/category/{category}").Name(string(CategoryDetail))
	r.Path("/science").Name(string(Science))
	r.Path("/engineering").Name(string(Engineering))
	r.Path("/blog").Name(string(Blog))
	r.Path("/blog/{id}").Name(string(PostDetail))
	r.Path("/about").Name(string(About))
	return &Routes{router: r}
}

// Resolve maps a client path to its route. A trailing slash is ignored and
// an unmatched path resolves to NotFound.
func (rs *Routes) Resolve(path string) Route {
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			path = "/"
		}
	}
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return Route{View: NotFound}
	}
	var match mux.RouteMatch
	if !rs.router.Match(req, &match) || match.Route == nil {
		return Route{View: NotFound}
	}
	route := Route{View: View(match.Route.GetName())}
	if len(match.Vars) > 0 {
		route.Params = make(map[string]string, len(match.Vars))
		for k, v := range match.Vars {
			unescaped, err := url.PathUnescape(v)
			if err != nil {
				return Route{View: NotFound}
			}
			route.Params[k] = unescaped
		}
	}
	return route
}

// Path builds the escaped client path of a view, the inverse of Resolve.
// pairs alternate parameter names and raw values.
func (rs *Routes) Path(view View, pairs ...string) (string, error) {
	route := rs.router.Get(string(view))
	if route == nil {
		return "", fmt.Errorf("no route for view %q", view)
	}
	escaped := make([]string, len(pairs))
	for i, v := range pairs {
		if i%2 == 1 {
			v = url.PathEscape(v)
		}
		escaped[i] = v
	}
	u, err := route.URLPath(escaped...)
	if err != nil {
		return "", fmt.Errorf("build path for view %q: %w", view, err)
	}
	return u.Path, nil
}
