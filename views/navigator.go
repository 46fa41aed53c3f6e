package views

import (
	"blog/content"
)

// State is the UI state scoped to the current view.
type State struct {
	MenuOpen   bool            `json:"menuOpen"`
	SearchOpen bool            `json:"searchOpen"`
	Query      string          `json:"query"`
	Sort       content.SortKey `json:"sort"`
}

// DefaultState is the state every view starts with.
func DefaultState() State {
	return State{Sort: content.SortDate}
}

// Navigator follows one user session through the views. Navigating resets the
// view scoped state. A Navigator is not safe for concurrent use.
type Navigator struct {
	routes   *Routes
	renderer *Renderer
	route    Route
	state    State
}

func NewNavigator(routes *Routes, renderer *Renderer) *Navigator {
	return &Navigator{
		routes:   routes,
		renderer: renderer,
		route:    routes.Resolve("/"),
		state:    DefaultState(),
	}
}

// Navigate moves to path and resets the state.
func (n *Navigator) Navigate(path string) Route {
	n.route = n.routes.Resolve(path)
	n.state = DefaultState()
	return n.route
}

func (n *Navigator) Route() Route {
	return n.route
}

func (n *Navigator) State() State {
	return n.state
}

func (n *Navigator) SetQuery(query string) {
	n.state.Query = query
}

// SetSort parses and applies a sort key; the state is unchanged on error.
func (n *Navigator) SetSort(key string) error {
	k, err := content.ParseSortKey(key)
	if err != nil {
		return err
	}
	n.state.Sort = k
	return nil
}

func (n *Navigator) ToggleMenu() {
	n.state.MenuOpen = !n.state.MenuOpen
}

func (n *Navigator) OpenSearch() {
	n.state.SearchOpen = true
}

func (n *Navigator) CloseSearch() {
	n.state.SearchOpen = false
}

// Page renders the current view with the current state.
func (n *Navigator) Page() Page {
	return n.renderer.Render(n.route, n.state)
}
