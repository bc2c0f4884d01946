// Package userupdate реализует HTTP-обработчик частичного обновления
// учетной записи: применяются только присутствующие в запросе поля.
package userupdate

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

	"github.com/invtrack/inventtrack/internal/http/response"
	"github.com/invtrack/inventtrack/internal/lib/sl"
	"github.com/invtrack/inventtrack/internal/lib/validate"
	"github.com/invtrack/inventtrack/internal/models"
	"github.com/invtrack/inventtrack/internal/storage"
)

// Handler обрабатывает запросы на обновление учетной записи.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики обновления пользователя.
type Service interface {
	Update(ctx context.Context, id int64, input models.UpdateUserInput) (*models.User, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.update"

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

	var input models.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if input.Email != nil && !validate.Email(*input.Email) {
		log.Error("invalid email format")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.FieldError("email", "invalid email format"))
		return
	}
	if input.Password != nil && !validate.Password(*input.Password) {
		log.Error("password does not meet requirements")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.FieldError("password", "password does not meet requirements"))
		return
	}

	user, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		var conflict *storage.ConflictError
		switch {
		case errors.Is(err, storage.ErrNotFound):
			log.Warn("user not found", slog.Int64("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
		case errors.As(err, &conflict):
			log.Error("duplicate value", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldError(conflict.Field, "already exists"))
		default:
			log.Error("failed to update user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update user"))
		}
		return
	}

	log.Info("user updated", slog.Int64("id", id))
	render.JSON(w, r, user)
}
