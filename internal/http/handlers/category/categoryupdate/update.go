// Package categoryupdate реализует HTTP-обработчик переименования категории.
package categoryupdate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/invtrack/inventtrack/internal/http/response"
	"github.com/invtrack/inventtrack/internal/lib/sl"
	"github.com/invtrack/inventtrack/internal/models"
	"github.com/invtrack/inventtrack/internal/storage"
)

// Handler обрабатывает запросы на переименование категории.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления категории.
type Service interface {
	Update(ctx context.Context, id int64, input models.CategoryInput) (*models.Category, error)
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
	const op = "handlers.category.update"

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

	category, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		var conflict *storage.ConflictError
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Warn("category not found", slog.Int64("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("category not found"))
		case errors.As(err, &conflict):
			log.Error("duplicate category name", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldError(conflict.Field, "already exists"))
		default:
			log.Error("failed to update category", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update category"))
		}
		return
	}

	log.Info("category updated", slog.Int64("id", id))
	render.JSON(w, r, category)
}
