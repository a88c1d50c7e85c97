package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jengzang/bodymap-backend-go/internal/api"
	"github.com/jengzang/bodymap-backend-go/internal/config"
	"github.com/jengzang/bodymap-backend-go/internal/database"
	"github.com/jengzang/bodymap-backend-go/internal/heatmap"
	"github.com/jengzang/bodymap-backend-go/internal/logging"
	"github.com/jengzang/bodymap-backend-go/internal/metrics"
	"github.com/jengzang/bodymap-backend-go/internal/middleware"
	"github.com/jengzang/bodymap-backend-go/internal/repository"
	"github.com/jengzang/bodymap-backend-go/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "bodymap-server:", err)
		os.Exit(1)
	}
}

func run() error {
	// 加载配置
	cfg, err := config.Load(os.Getenv("BODYMAP_CONFIG"))
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer logger.Sync()

	for _, w := range cfg.Warnings() {
		logger.Warn("insecure configuration", zap.String("detail", w))
	}

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化数据库
	db, err := database.Open(database.Config{
		Path:    cfg.Database.Path,
		Migrate: cfg.Database.Migrate,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	m := metrics.New(true)
	store := repository.NewSymptomRepository(db.DB)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Requests > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		defer limiter.Stop()
	}

	// 初始化路由
	router := api.SetupRouter(api.Dependencies{
		Config:      cfg,
		Logger:      logger,
		Metrics:     m,
		RateLimiter: limiter,
		Symptoms:    service.NewSymptomService(store),
		BodyMap: service.NewBodyMapService(store, service.BodyMapOptions{
			Cache:      heatmap.NewCache(cfg.Heatmap.CacheSize),
			Metrics:    m,
			Logger:     logger,
			FetchLimit: cfg.Symptoms.FetchLimit,
		}),
	})

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
