package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"choreboard/internal/handler"
	"choreboard/internal/metric"
	"choreboard/internal/repositories"
	"choreboard/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	// Init Metrics
	metric.InitMetrics()

	db, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := metric.UpdateCountsFromDB(db); err != nil {
		lg.Warn("failed to initialise count metrics", zap.Error(err))
	}

	// Repository / Service / Handler wiring
	taskRepo := repositories.NewTaskRepository(db)
	roommateRepo := repositories.NewRoommateRepository(db)
	roomRepo := repositories.NewRoomRepository(db)

	taskSvc := service.NewTaskService(taskRepo)
	roommateSvc := service.NewRoommateService(roommateRepo)
	roomSvc := service.NewRoomService(roomRepo)

	if rdb := connectRedis(ctx); rdb != nil {
		defer rdb.Close()
		taskSvc.SetCacheClient(rdb)
		roommateSvc.SetCacheClient(rdb)
	}

	gin.SetMode(gin.ReleaseMode)
	r := handler.NewRouter(handler.RouterDeps{
		Tasks:          handler.NewTaskHandler(taskSvc, lg),
		Roommates:      handler.NewRoommateHandler(roommateSvc, lg),
		Rooms:          handler.NewRoomHandler(roomSvc, lg),
		Logger:         lg,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTP.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("starting server", zap.String("addr", srv.Addr), zap.String("driver", cfg.Database.Driver))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// connectRedis returns a client for the configured cache, or nil when no
// address is set or the server does not answer. The API works without it.
func connectRedis(ctx context.Context) *redis.Client {
	if cfg.Redis.Addr == "" {
		lg.Info("redis cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		lg.Warn("redis not available, continuing without cache", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		rdb.Close()
		return nil
	}

	lg.Info("redis cache enabled", zap.String("addr", cfg.Redis.Addr))
	return rdb
}
