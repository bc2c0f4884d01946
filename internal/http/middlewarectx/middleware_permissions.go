package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/invtrack/inventtrack/internal/http/response"
	"github.com/invtrack/inventtrack/internal/permissions"
)

// RequirePermissions возвращает middleware, пропускающий запрос только при
// наличии у claims всех перечисленных разрешений. Отсутствие claims —
// ошибка конфигурации маршрута, отвечаем 401; нехватка разрешений — 403.
func RequirePermissions(log *slog.Logger, required ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequirePermissions"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				log.Error("claims missing from request context")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			if !permissions.ContainsAll(claims.Permissions, required) {
				log.Warn("permission denied",
					slog.String("email", claims.Email),
					slog.Any("required", required))
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("permission denied"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
