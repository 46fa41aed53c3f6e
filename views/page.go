package views

import (
	"blog/content"
)

// Page is what a view renders to. Only the fields relevant to the view are set.
type Page struct {
	Route      Route                   `json:"route"`
	Title      string                  `json:"title"`
	Query      string                  `json:"query,omitempty"`
	Sort       content.SortKey         `json:"sort,omitempty"`
	Posts      []content.Post          `json:"posts,omitempty"`
	Post       *content.Post           `json:"post,omitempty"`
	Categories []content.CategoryCount `json:"categories,omitempty"`
	Sections   []Section               `json:"sections,omitempty"`
	Text       string                  `json:"text,omitempty"`
	NotFound   bool                    `json:"notFound,omitempty"`
}

// Renderer renders routes against a content store.
type Renderer struct {
	store *content.Store
}

func NewRenderer(store *content.Store) *Renderer {
	return &Renderer{store: store}
}

// Render builds the page for route using the session state. It never fails:
// unknown posts and paths render a not-found page, unknown categories an
// empty one.
func (r *Renderer) Render(route Route, state State) Page {
	page := Page{Route: route}
	switch route.View {
	case Home:
		page.Title = "Welcome to My Blog"
		if latest, ok := r.store.Latest(); ok {
			page.Post = &latest
		}
	case Categories:
		page.Title = "Categories"
		page.Categories = content.Categories(r.store.Posts())
		page.Sections = copySections(overviewSections)
	case CategoryDetail:
		category := route.Param("category")
		page.Title = category
		page.Sort = state.Sort
		page.Posts = content.InCategory(r.store.Posts(), category, state.Sort)
	case Science:
		page.Title = "Science"
		page.Sections = copySections(scienceSections)
	case Engineering:
		page.Title = "Engineering & Coding"
		page.Sections = copySections(engineeringSections)
	case Blog:
		page.Title = "Blog"
		page.Query = state.Query
		page.Sort = state.Sort
		page.Posts = content.Project(r.store.Posts(), state.Query, state.Sort)
	case PostDetail:
		post, ok := r.store.Post(route.Param("id"))
		if !ok {
			page.Title = "Article not found"
			page.NotFound = true
			break
		}
		page.Title = post.Title
		page.Post = &post
	case About:
		page.Title = "About Me"
		page.Text = aboutText
	default:
		page.Title = "Page not found"
		page.NotFound = true
	}
	return page
}
