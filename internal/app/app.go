// Package app собирает приложение: хранилище, миграции, кэш, сервисы,
// маршруты и HTTP-сервер с мягкой остановкой.
package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/invtrack/inventtrack/internal/cache"
	"github.com/invtrack/inventtrack/internal/config"
	"github.com/invtrack/inventtrack/internal/lib/jwt"
	"github.com/invtrack/inventtrack/internal/migrations"
	authservice "github.com/invtrack/inventtrack/internal/services/auth"
	categoryservice "github.com/invtrack/inventtrack/internal/services/category"
	itemservice "github.com/invtrack/inventtrack/internal/services/item"
	userservice "github.com/invtrack/inventtrack/internal/services/user"
	"github.com/invtrack/inventtrack/internal/storage"
)

// App держит HTTP-сервер и его зависимости.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
	cache  *cache.Cache
}

// New подключает хранилище и кэш, применяет миграции, собирает сервисы
// и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath, logger); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.New(db, jwtMaker)
	userService := userservice.New(db, logger)
	categoryService := categoryservice.New(db, logger)
	itemService := itemservice.New(db, cacheRedis, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker,
		authService, userService, categoryService, itemService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до ошибки сервера либо отмены
// контекста, после которой сервер останавливается мягко.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		if closeErr := a.cache.Db.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
		return err
	}
}
