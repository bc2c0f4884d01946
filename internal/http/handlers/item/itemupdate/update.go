// Package itemupdate реализует HTTP-обработчик частичного обновления
// позиции: применяются только присутствующие в запросе поля, автором
// изменения записывается пользователь из claims токена.
package itemupdate

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

	"github.com/invtrack/inventtrack/internal/http/middlewarectx"
	"github.com/invtrack/inventtrack/internal/http/response"
	"github.com/invtrack/inventtrack/internal/lib/sl"
	"github.com/invtrack/inventtrack/internal/models"
	"github.com/invtrack/inventtrack/internal/storage"
)

// Handler обрабатывает запросы на обновление позиции.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления позиции.
type Service interface {
	Update(ctx context.Context, id int64, input models.UpdateItemInput, actorID int64) (*models.Item, error)
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
	const op = "handlers.item.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	claims, ok := middlewarectx.ClaimsFromContext(r.Context())
	if !ok {
		log.Error("claims missing from request context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authentication required"))
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("failed to decode id from url"))
		return
	}

	var input models.UpdateItemInput
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
	if input.Price != nil && (input.Price.IsNegative() || input.Price.Exponent() < -2) {
		log.Error("invalid price", slog.String("price", input.Price.String()))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.FieldError("price", "price must be non-negative with at most two decimal places"))
		return
	}

	item, err := h.service.Update(r.Context(), id, input, claims.UserID)
	if err != nil {
		var conflict *storage.ConflictError
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Warn("item not found", slog.Int64("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("item not found"))
		case errors.Is(err, storage.ErrCategoryMissing):
			log.Error("category does not exist")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldError("category_id", "category does not exist"))
		case errors.As(err, &conflict):
			log.Error("duplicate value", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldError(conflict.Field, "already exists"))
		default:
			log.Error("failed to update item", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update item"))
		}
		return
	}

	log.Info("item updated", slog.Int64("id", id))
	render.JSON(w, r, item)
}
