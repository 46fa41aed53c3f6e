package storage

import (
	"context"
	"errors"
	"fmt"

	"blog/storage/models"
)

var (
	InternalError   = errors.New("storage internal error")
	ClientError     = errors.New("storage client error")
	NotFoundError   = fmt.Errorf("%w.not_found", ClientError)
	ValidationError = fmt.Errorf("%w.validation", ClientError)
)

// Storage is the persistent post collection behind the API service.
// Implementations must return posts from ListPosts newest first and
// treat DeletePost of an unknown id as a no-op.
type Storage interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	AddPost(ctx context.Context, post models.Post) (models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	DeletePost(ctx context.Context, id string) error
}
