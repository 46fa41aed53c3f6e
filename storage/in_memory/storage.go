package in_memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"blog/storage"
	"blog/storage/models"
)

type InMemoryStorage struct {
	mut     sync.RWMutex
	posts   map[string]models.Post
	postIds []string
	now     func() time.Time
}

func (s *InMemoryStorage) ListPosts(_ context.Context) ([]models.Post, error) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	posts := make([]models.Post, 0, len(s.postIds))
	for _, id := range s.postIds {
		posts = append(posts, clonePost(s.posts[id]))
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}

func (s *InMemoryStorage) AddPost(_ context.Context, post models.Post) (models.Post, error) {
	if err := post.Validate(); err != nil {
		return models.Post{}, fmt.Errorf("%s: %w", err.Error(), storage.ValidationError)
	}
	post.Normalize(s.now())
	post.Id = uuid.New().String()

	s.mut.Lock()
	defer s.mut.Unlock()
	s.posts[post.Id] = clonePost(post)
	s.postIds = append(s.postIds, post.Id)
	return post, nil
}

func (s *InMemoryStorage) GetPost(_ context.Context, postId string) (models.Post, error) {
	s.mut.RLock()
	defer s.mut.RUnlock()

	post, found := s.posts[postId]
	if !found {
		return models.Post{}, fmt.Errorf("no post with id %v: %w", postId, storage.NotFoundError)
	}
	return clonePost(post), nil
}

func (s *InMemoryStorage) DeletePost(_ context.Context, postId string) error {
	s.mut.Lock()
	defer s.mut.Unlock()

	if _, found := s.posts[postId]; !found {
		return nil
	}
	delete(s.posts, postId)
	for i, id := range s.postIds {
		if id == postId {
			s.postIds = append(s.postIds[:i], s.postIds[i+1:]...)
			break
		}
	}
	return nil
}

func clonePost(p models.Post) models.Post {
	p.Tags = append([]string(nil), p.Tags...)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}

func CreateInMemoryStorage() *InMemoryStorage {
	return CreateInMemoryStorageWithClock(time.Now)
}

func CreateInMemoryStorageWithClock(now func() time.Time) *InMemoryStorage {
	return &InMemoryStorage{
		posts: make(map[string]models.Post),
		now:   now,
	}
}

var _ storage.Storage = (*InMemoryStorage)(nil)
