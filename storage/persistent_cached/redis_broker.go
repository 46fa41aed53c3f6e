package persistent_cached

import (
	"context"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/config"
	"github.com/RichardKnop/machinery/v1/tasks"
	"go.uber.org/zap"
)

const refreshPostsCacheTask = "refreshPostsCache"

func StartBroker(brokerUrl string) (*machinery.Server, error) {
	cnf := &config.Config{
		DefaultQueue:    "machinery_tasks",
		ResultsExpireIn: 3600,
		Broker:          brokerUrl, // "redis://localhost:6379"
		ResultBackend:   brokerUrl,
		Redis: &config.RedisConfig{
			MaxIdle:                3,
			IdleTimeout:            240,
			ReadTimeout:            15,
			WriteTimeout:           15,
			ConnectTimeout:         15,
			NormalTasksPollPeriod:  1000,
			DelayedTasksPollPeriod: 500,
		},
	}
	return machinery.NewServer(cnf)
}

// RegisterTasks binds the cache refresh task to the given cache.
func RegisterTasks(server *machinery.Server, cache *PersistentStorageWithCache) error {
	return server.RegisterTasks(map[string]interface{}{
		refreshPostsCacheTask: func() error {
			return cache.RefreshPostsCache(context.Background())
		},
	})
}

func CreateWorker(server *machinery.Server, logger *zap.Logger) *machinery.Worker {
	consumerTag := "machinery_worker"
	worker := server.NewWorker(consumerTag, 0)
	worker.SetErrorHandler(func(err error) {
		logger.Error("worker task failed", zap.Error(err))
	})
	return worker
}

func createRefreshPostsCacheTask() tasks.Signature {
	return tasks.Signature{
		Name: refreshPostsCacheTask,
	}
}
