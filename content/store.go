package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed posts.yaml
var defaultPosts []byte

type document struct {
	Posts []Post `yaml:"posts"`
}

// Store is an ordered, immutable post collection. It is safe for concurrent
// readers because nothing mutates it after Load returns.
type Store struct {
	posts []Post
	byID  map[string]int
}

// Load decodes a YAML post document and checks every post is complete and
// every id unique.
func Load(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return New(doc.Posts)
}

// New builds a store from posts in their collection order.
func New(posts []Post) (*Store, error) {
	s := &Store{
		posts: make([]Post, 0, len(posts)),
		byID:  make(map[string]int, len(posts)),
	}
	for i, p := range posts {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("post #%d (%q): %w", i, p.ID, err)
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("post #%d: duplicate id %q", i, p.ID)
		}
		s.byID[p.ID] = len(s.posts)
		s.posts = append(s.posts, p.clone())
	}
	return s, nil
}

// Default returns the store built from the posts shipped with the binary.
func Default() (*Store, error) {
	return Load(defaultPosts)
}

// Posts returns a copy of the whole collection in collection order.
func (s *Store) Posts() []Post {
	out := make([]Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = p.clone()
	}
	return out
}

// Post looks a post up by id.
func (s *Store) Post(id string) (Post, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Post{}, false
	}
	return s.posts[i].clone(), true
}

// Latest returns the most recently published post.
func (s *Store) Latest() (Post, bool) {
	sorted := Project(s.posts, "", SortDate)
	if len(sorted) == 0 {
		return Post{}, false
	}
	return sorted[0], true
}

func (s *Store) Len() int {
	return len(s.posts)
}
