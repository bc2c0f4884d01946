// Package categorylist реализует HTTP-обработчик списка категорий
// с необязательным фильтром ?search= по подстроке имени без учета регистра.
package categorylist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/invtrack/inventtrack/internal/http/response"
	"github.com/invtrack/inventtrack/internal/lib/sl"
	"github.com/invtrack/inventtrack/internal/models"
)

// Handler обрабатывает запросы на получение списка категорий.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка категорий.
type Service interface {
	List(ctx context.Context, search string) ([]*models.Category, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	search := r.URL.Query().Get("search")

	categories, err := h.service.List(r.Context(), search)
	if err != nil {
		log.Error("failed to list categories", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list categories"))
		return
	}
	if categories == nil {
		categories = []*models.Category{}
	}

	log.Info("categories listed", slog.Int("count", len(categories)))
	render.JSON(w, r, categories)
}
