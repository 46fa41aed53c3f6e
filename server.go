package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"blog/config"
	"blog/content"
	"blog/handlers"
	"blog/storage"
	"blog/storage/in_memory"
	"blog/storage/persistent"
	"blog/storage/persistent_cached"
	"blog/utils"
	"blog/views"
)

type AppMode string

const (
	ServerMode AppMode = "server"
	WorkerMode AppMode = "worker"
)

// CreateStorage builds the post store selected by cfg. The returned close
// function releases its connections.
func CreateStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (storage.Storage, func(), error) {
	switch cfg.Mode {
	case config.StorageInMemory:
		return in_memory.CreateInMemoryStorage(), func() {}, nil
	case config.StorageMongo:
		mongoStorage, err := persistent.CreateMongoStorage(ctx, cfg.Mongo.URL, cfg.Mongo.DBName, logger)
		if err != nil {
			return nil, nil, err
		}
		return mongoStorage, func() { closeMongo(mongoStorage, logger) }, nil
	case config.StorageCached:
		cached, closeFn, err := createCachedStorage(ctx, cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Redis.BrokerURL != "" {
			broker, err := persistent_cached.StartBroker(cfg.Redis.BrokerURL)
			if err != nil {
				closeFn()
				return nil, nil, fmt.Errorf("failed to start broker: %w", err)
			}
			cached.WithRefreshTasks(broker)
		}
		return cached, closeFn, nil
	}
	return nil, nil, fmt.Errorf("invalid storage mode %q", cfg.Mode)
}

func createCachedStorage(ctx context.Context, cfg config.StorageConfig, logger *zap.Logger) (*persistent_cached.PersistentStorageWithCache, func(), error) {
	mongoStorage, err := persistent.CreateMongoStorage(ctx, cfg.Mongo.URL, cfg.Mongo.DBName, logger)
	if err != nil {
		return nil, nil, err
	}
	cached := persistent_cached.CreatePersistentStorageCachedWithRedis(mongoStorage, cfg.Redis.URL, cfg.Redis.TTL, logger)
	closeFn := func() {
		if err := cached.Close(); err != nil {
			logger.Warn("failed to close redis client", zap.Error(err))
		}
		closeMongo(mongoStorage, logger)
	}
	return cached, closeFn, nil
}

func closeMongo(s *persistent.MongoStorage, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Close(ctx); err != nil {
		logger.Warn("failed to disconnect from mongo", zap.Error(err))
	}
}

// CreateHandler wires the API store and the embedded content store.
func CreateHandler(store storage.Storage, logger *zap.Logger) (*handlers.HTTPHandler, error) {
	posts, err := content.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	return &handlers.HTTPHandler{
		Storage:  store,
		Routes:   views.NewRoutes(),
		Renderer: views.NewRenderer(posts),
		Logger:   logger,
	}, nil
}

func CreateServer(cfg *config.Config, store storage.Storage, logger *zap.Logger) (*http.Server, error) {
	handler, err := CreateHandler(store, logger)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Handler:      handlers.NewRouter(handler),
		Addr:         cfg.App.HTTP.Address(),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}, nil
}

func runServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	store, closeStore, err := CreateStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer closeStore()

	srv, err := CreateServer(cfg, store, logger)
	if err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("start serving", zap.String("address", srv.Addr), zap.String("storage", cfg.Storage.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", zap.Error(err))
		}
		return nil
	})
	return g.Wait()
}

func runWorker(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	if cfg.Storage.Mode != config.StorageCached || cfg.Storage.Redis.BrokerURL == "" {
		return fmt.Errorf("worker mode requires STORAGE_MODE=%s and BROKER_URL", config.StorageCached)
	}
	cached, closeStore, err := createCachedStorage(ctx, cfg.Storage, logger)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer closeStore()

	broker, err := persistent_cached.StartBroker(cfg.Storage.Redis.BrokerURL)
	if err != nil {
		return fmt.Errorf("failed to start broker: %w", err)
	}
	if err := persistent_cached.RegisterTasks(broker, cached); err != nil {
		return fmt.Errorf("failed to register tasks: %w", err)
	}
	worker := persistent_cached.CreateWorker(broker, logger)

	errorsChan := make(chan error, 1)
	worker.LaunchAsync(errorsChan)
	logger.Info("worker started")
	select {
	case err := <-errorsChan:
		return err
	case <-ctx.Done():
		worker.Quit()
		return nil
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger, err := utils.NewLogger(cfg.App.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch AppMode(cmd.String("mode")) {
	case ServerMode:
		return runServer(ctx, cfg, logger)
	case WorkerMode:
		return runWorker(ctx, cfg, logger)
	default:
		return fmt.Errorf("invalid mode %q", cmd.String("mode"))
	}
}

func main() {
	cmd := &cli.Command{
		Name:   "blog",
		Usage:  "Personal blog API and page service",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   "config/config.yaml",
				Sources: cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "mode",
				Aliases: []string{"m"},
				Usage:   "server or worker",
				Value:   string(ServerMode),
				Sources: cli.EnvVars("APP_MODE"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "application error:", err)
		os.Exit(1)
	}
}
