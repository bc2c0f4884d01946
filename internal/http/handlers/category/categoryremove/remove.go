// Package categoryremove реализует HTTP-обработчик удаления категории.
// Позиции удаляемой категории не удаляются, а отвязываются от нее.
package categoryremove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/invtrack/inventtrack/internal/http/response"
	"github.com/invtrack/inventtrack/internal/lib/sl"
	"github.com/invtrack/inventtrack/internal/storage"
)

// Handler обрабатывает запросы на удаление категории.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления категории.
type Service interface {
	Delete(ctx context.Context, id int64) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Warn("category not found", slog.Int64("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("category not found"))
			return
		}
		log.Error("failed to delete category", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete category"))
		return
	}

	log.Info("category deleted", slog.Int64("id", id))
	w.WriteHeader(http.StatusNoContent)
}
