// Package middlewarectx содержит HTTP middleware для проверки JWT токенов,
// контроля разрешений и ограничения частоты запросов.
//
// JWTMiddleware проверяет наличие и валидность JWT в заголовке Authorization
// и при успехе кладет claims токена в контекст запроса. Решения о доступе
// дальше принимаются по снимку разрешений из claims, без похода в базу.
//
// В случае ошибки проверки возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/invtrack/inventtrack/internal/http/response"
	"github.com/invtrack/inventtrack/internal/lib/jwt"
	"github.com/invtrack/inventtrack/internal/lib/sl"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// ClaimsKey — ключ, под которым claims токена лежат в контексте.
const ClaimsKey Key = "claims"

// ClaimsFromContext извлекает claims токена из контекста запроса.
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims)
	return claims, ok
}

// JWTMiddleware возвращает HTTP middleware, который проверяет JWT в заголовке
// Authorization и кладет claims в контекст запроса.
func JWTMiddleware(maker jwt.Maker, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := maker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
