package app

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/invtrack/inventtrack/internal/http/handlers/auth/login"
	"github.com/invtrack/inventtrack/internal/http/handlers/auth/register"
	"github.com/invtrack/inventtrack/internal/http/handlers/category/categorycreate"
	"github.com/invtrack/inventtrack/internal/http/handlers/category/categorylist"
	"github.com/invtrack/inventtrack/internal/http/handlers/category/categoryremove"
	"github.com/invtrack/inventtrack/internal/http/handlers/category/categoryupdate"
	"github.com/invtrack/inventtrack/internal/http/handlers/item/itemcreate"
	"github.com/invtrack/inventtrack/internal/http/handlers/item/itemread"
	"github.com/invtrack/inventtrack/internal/http/handlers/item/itemremove"
	"github.com/invtrack/inventtrack/internal/http/handlers/item/itemupdate"
	"github.com/invtrack/inventtrack/internal/http/handlers/user/userupdate"
	"github.com/invtrack/inventtrack/internal/http/middlewarectx"
	"github.com/invtrack/inventtrack/internal/lib/jwt"
	"github.com/invtrack/inventtrack/internal/permissions"
	authservice "github.com/invtrack/inventtrack/internal/services/auth"
	categoryservice "github.com/invtrack/inventtrack/internal/services/category"
	itemservice "github.com/invtrack/inventtrack/internal/services/item"
	userservice "github.com/invtrack/inventtrack/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker,
	authService *authservice.Service, userService *userservice.Service,
	categoryService *categoryservice.Service, itemService *itemservice.Service) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	limiter := rate.NewLimiter(1, 3)

	r.Route("/auth", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/users/", register.New(logger, authService).ServeHTTP)
		r.Post("/users/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))
			r.With(middlewarectx.RequirePermissions(logger, permissions.UpdateUser)).
				Put("/users/{id}/", userupdate.New(logger, userService).ServeHTTP)
		})
	})

	r.Route("/inventory", func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger, limiter))

		r.With(middlewarectx.RequirePermissions(logger, permissions.CreateCategory)).
			Post("/category/", categorycreate.New(logger, categoryService).ServeHTTP)
		r.With(middlewarectx.RequirePermissions(logger, permissions.UpdateCategory)).
			Put("/category/{id}/", categoryupdate.New(logger, categoryService).ServeHTTP)
		r.With(middlewarectx.RequirePermissions(logger, permissions.DeleteCategory)).
			Delete("/category/{id}/", categoryremove.New(logger, categoryService).ServeHTTP)
		r.With(middlewarectx.RequirePermissions(logger, permissions.ViewCategory)).
			Get("/categories/", categorylist.New(logger, categoryService).ServeHTTP)

		r.With(middlewarectx.RequirePermissions(logger, permissions.CreateItem)).
			Post("/item/", itemcreate.New(logger, itemService).ServeHTTP)
		r.With(middlewarectx.RequirePermissions(logger, permissions.ViewItem)).
			Get("/item/{id}/", itemread.New(logger, itemService).ServeHTTP)
		r.With(middlewarectx.RequirePermissions(logger, permissions.UpdateItem)).
			Put("/item/{id}/", itemupdate.New(logger, itemService).ServeHTTP)
		r.With(middlewarectx.RequirePermissions(logger, permissions.DeleteItem)).
			Delete("/item/{id}/", itemremove.New(logger, itemService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
}
