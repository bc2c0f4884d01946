// Package categorycreate реализует HTTP-обработчик создания категории.
package categorycreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/invtrack/inventtrack/internal/http/response"
	"github.com/invtrack/inventtrack/internal/lib/sl"
	"github.com/invtrack/inventtrack/internal/models"
	"github.com/invtrack/inventtrack/internal/storage"
)

// Handler обрабатывает запросы на создание категории.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания категории.
type Service interface {
	Create(ctx context.Context, input models.CategoryInput) (*models.Category, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.category.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var input models.CategoryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	category, err := h.service.Create(r.Context(), input)
	if err != nil {
		var conflict *storage.ConflictError
		if errors.As(err, &conflict) {
			log.Error("duplicate category name", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldError(conflict.Field, "already exists"))
			return
		}
		log.Error("failed to create category", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create category"))
		return
	}

	log.Info("category created", slog.Int64("id", category.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, category)
}
