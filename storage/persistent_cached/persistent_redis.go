package persistent_cached

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"blog/storage"
	"blog/storage/models"
)

const (
	postsListKey  = "posts:all"
	postKeyPrefix = "posts:id:"
	DefaultTTL    = time.Hour
)

// TaskSender is the subset of *machinery.Server used to schedule cache refreshes.
type TaskSender interface {
	SendTaskWithContext(ctx context.Context, signature *tasks.Signature) (*result.AsyncResult, error)
}

type PersistentStorageWithCache struct {
	client            *redis.Client
	persistentStorage storage.Storage
	ttl               time.Duration
	tasks             TaskSender
	logger            *zap.Logger
}

func CreatePersistentStorageCachedWithRedis(persistentStorage storage.Storage, redisUrl string, ttl time.Duration, logger *zap.Logger) *PersistentStorageWithCache {
	redisClient := redis.NewClient(&redis.Options{
		Addr: redisUrl,
	})
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &PersistentStorageWithCache{
		client:            redisClient,
		persistentStorage: persistentStorage,
		ttl:               ttl,
		logger:            logger,
	}
}

// WithRefreshTasks makes writes schedule an asynchronous list refresh through
// the broker instead of leaving the list cold until the next read.
func (s *PersistentStorageWithCache) WithRefreshTasks(sender TaskSender) *PersistentStorageWithCache {
	s.tasks = sender
	return s
}

func (s *PersistentStorageWithCache) ListPosts(ctx context.Context) ([]models.Post, error) {
	var cached []models.Post
	if s.getFromCache(ctx, postsListKey, &cached) {
		return cached, nil
	}
	posts, err := s.persistentStorage.ListPosts(ctx)
	if err == nil {
		s.saveToCache(ctx, postsListKey, posts)
	}
	return posts, err
}

func (s *PersistentStorageWithCache) AddPost(ctx context.Context, post models.Post) (models.Post, error) {
	created, err := s.persistentStorage.AddPost(ctx, post)
	if err != nil {
		return created, err
	}
	s.saveToCache(ctx, postKeyPrefix+created.Id, created)
	s.invalidateList(ctx)
	return created, nil
}

func (s *PersistentStorageWithCache) GetPost(ctx context.Context, postId string) (models.Post, error) {
	var cached models.Post
	if s.getFromCache(ctx, postKeyPrefix+postId, &cached) {
		return cached, nil
	}
	post, err := s.persistentStorage.GetPost(ctx, postId)
	if err == nil {
		s.saveToCache(ctx, postKeyPrefix+postId, post)
	}
	return post, err
}

func (s *PersistentStorageWithCache) DeletePost(ctx context.Context, postId string) error {
	if err := s.persistentStorage.DeletePost(ctx, postId); err != nil {
		return err
	}
	s.removeFromCache(ctx, postKeyPrefix+postId)
	s.invalidateList(ctx)
	return nil
}

// RefreshPostsCache reloads the post list from the persistent store into redis.
func (s *PersistentStorageWithCache) RefreshPostsCache(ctx context.Context) error {
	posts, err := s.persistentStorage.ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh posts cache: %w", err)
	}
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("failed to encode posts for cache: %w", err)
	}
	if err := s.client.Set(ctx, postsListKey, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save posts to redis: %w", err)
	}
	s.logger.Info("refreshed posts cache", zap.Int("posts", len(posts)))
	return nil
}

func (s *PersistentStorageWithCache) Close() error {
	return s.client.Close()
}

func (s *PersistentStorageWithCache) invalidateList(ctx context.Context) {
	s.removeFromCache(ctx, postsListKey)
	if s.tasks == nil {
		return
	}
	signature := createRefreshPostsCacheTask()
	if _, err := s.tasks.SendTaskWithContext(ctx, &signature); err != nil {
		s.logger.Warn("failed to schedule posts cache refresh", zap.Error(err))
	}
}

func (s *PersistentStorageWithCache) saveToCache(ctx context.Context, key string, value interface{}) {
	j, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("failed to encode value for redis", zap.String("key", key), zap.Error(err))
		return
	}
	if err = s.client.Set(ctx, key, j, s.ttl).Err(); err != nil {
		s.logger.Warn("failed to save value to redis", zap.String("key", key), zap.Error(err))
	}
}

func (s *PersistentStorageWithCache) getFromCache(ctx context.Context, key string, target interface{}) bool {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("failed to get value from redis", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err = json.Unmarshal(val, target); err != nil {
		s.logger.Warn("failed to decode cached value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *PersistentStorageWithCache) removeFromCache(ctx context.Context, key string) {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("failed to remove value from redis", zap.String("key", key), zap.Error(err))
	}
}

var _ storage.Storage = (*PersistentStorageWithCache)(nil)
