package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"todolist.com/todolist/internal/cache"
	config "todolist.com/todolist/internal/configs"
	httpapi "todolist.com/todolist/internal/http"
	middleware "todolist.com/todolist/internal/http/middlewares"
	repository "todolist.com/todolist/internal/repositories"
	"todolist.com/todolist/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the task HTTP API backed by the configured database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := config.NewLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		database, err := config.NewDatabaseClient(cfg)
		if err != nil {
			return err
		}

		tagCache, closeCache, err := newTagCache(cfg, logger)
		if err != nil {
			return err
		}
		defer closeCache()

		taskRepo := repository.NewTaskRepository(database)
		taskService := services.NewTaskService(taskRepo, tagCache, logger)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		e := echo.New()
		e.HideBanner = true
		e.HidePort = true
		httpapi.Register(e, httpapi.NewHandler(taskService, logger), httpapi.Options{
			RateLimitPerMinute: cfg.RateLimit,
			CORSOrigin:         cfg.CORSOrigin,
			Logger:             logger,
			Metrics:            middleware.NewMetrics(registry),
		})

		go func() {
			logger.Info("HTTP server listening", zap.String("addr", cfg.AppURL), zap.String("db", cfg.DBDriver))
			if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server stopped", zap.Error(err))
				stop()
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Warn("HTTP server shutdown", zap.Error(err))
		}

		logger.Info("HTTP server shut down gracefully")
		return nil
	},
}

func newTagCache(cfg config.Config, logger *zap.Logger) (cache.TagCache, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, tag cache disabled")
		return cache.NoopTagCache{}, func() {}, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		return nil, nil, err
	}

	ttl := time.Duration(cfg.TagCacheTTLSeconds) * time.Second
	return cache.NewRedisTagCache(redisClient, cfg.RedisTagsKey, ttl), redisClient.Close, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
