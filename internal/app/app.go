// Package app wires configuration, storage, services and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/atinroy/focusflow-backend/internal/adapter/postgres"
	settingsrepo "github.com/atinroy/focusflow-backend/internal/adapter/postgres/settings"
	streakrepo "github.com/atinroy/focusflow-backend/internal/adapter/postgres/streak"
	tagrepo "github.com/atinroy/focusflow-backend/internal/adapter/postgres/tag"
	timeblockrepo "github.com/atinroy/focusflow-backend/internal/adapter/postgres/timeblock"
	todorepo "github.com/atinroy/focusflow-backend/internal/adapter/postgres/todo"
	userrepo "github.com/atinroy/focusflow-backend/internal/adapter/postgres/user"
	"github.com/atinroy/focusflow-backend/internal/auth"
	"github.com/atinroy/focusflow-backend/internal/config"
	authservice "github.com/atinroy/focusflow-backend/internal/service/auth"
	"github.com/atinroy/focusflow-backend/internal/service/settings"
	"github.com/atinroy/focusflow-backend/internal/service/stats"
	"github.com/atinroy/focusflow-backend/internal/service/streak"
	"github.com/atinroy/focusflow-backend/internal/service/tag"
	"github.com/atinroy/focusflow-backend/internal/service/timeblock"
	"github.com/atinroy/focusflow-backend/internal/service/todo"
	"github.com/atinroy/focusflow-backend/internal/transport/middleware"
	"github.com/atinroy/focusflow-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the service graph and serves HTTP until ctx is
// canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	loc, err := time.LoadLocation(cfg.Tracker.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.Tracker.Timezone, err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	tags := tagrepo.New(pool)
	todos := todorepo.New(pool)
	blocks := timeblockrepo.New(pool)
	streaks := streakrepo.New(pool)
	userSettings := settingsrepo.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authSvc := authservice.NewService(logger, users, userSettings, streaks, txManager, jwtManager, cfg.Auth)
	tagSvc := tag.NewService(logger, tags, todos, blocks)
	todoSvc := todo.NewService(logger, todos, tags)
	streakSvc := streak.NewService(logger, streaks, loc)
	blockSvc := timeblock.NewService(logger, blocks, todos, tags, streakSvc, txManager, loc, cfg.Tracker.MaxQueryRangeDays)
	statsSvc := stats.NewService(logger, blocks, loc, cfg.Tracker.MaxQueryRangeDays)
	settingsSvc := settings.NewService(logger, userSettings)

	mux := rest.NewRouter(rest.Handlers{
		Auth:     rest.NewAuthHandler(authSvc, logger),
		Tags:     rest.NewTagHandler(tagSvc, logger),
		Todos:    rest.NewTodoHandler(todoSvc, logger),
		Blocks:   rest.NewBlockHandler(blockSvc, loc, logger),
		Streak:   rest.NewStreakHandler(streakSvc, logger),
		Stats:    rest.NewStatsHandler(statsSvc, loc, logger),
		Settings: rest.NewSettingsHandler(settingsSvc, logger),
		Health:   rest.NewHealthHandler(pool, BuildVersion()),
	})

	rateLimiter := middleware.NewRateLimiter(time.Minute)
	defer rateLimiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rateLimiter.Limit(300),
		middleware.Auth(jwtManager),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}
