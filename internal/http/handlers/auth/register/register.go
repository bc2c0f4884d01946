// Package register реализует HTTP-обработчик создания учетной записи.
//
// Входные данные проходят структурную валидацию и проверку формата почты
// и стойкости пароля; создание делегируется сервису аутентификации.
// При успехе возвращается 201 и созданный пользователь без пароля.
package register

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
	"github.com/invtrack/inventtrack/internal/lib/validate"
	"github.com/invtrack/inventtrack/internal/models"
	"github.com/invtrack/inventtrack/internal/services/auth"
	"github.com/invtrack/inventtrack/internal/storage"
)

// Request — входные данные для регистрации.
type Request struct {
	Email       string  `json:"email" validate:"required,max=255"`
	Password    string  `json:"password" validate:"required"`
	FirstName   string  `json:"first_name" validate:"required,max=255"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=255"`
	IsSuperuser bool    `json:"is_superuser"`
}

// Handler обрабатывает запросы на создание учетной записи.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, email, firstName string, lastName *string, rawPassword string, superuser bool) (*models.User, error)
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
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	if !validate.Email(req.Email) {
		log.Error("invalid email format", slog.String("email", req.Email))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.FieldError("email", "invalid email format"))
		return
	}
	if !validate.Password(req.Password) {
		log.Error("password does not meet requirements")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.FieldError("password", "password does not meet requirements"))
		return
	}

	user, err := h.service.Register(r.Context(), req.Email, req.FirstName, req.LastName, req.Password, req.IsSuperuser)
	if err != nil {
		var conflict *storage.ConflictError
		switch {
		case errors.Is(err, auth.ErrMissingField):
			log.Error("missing required field", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("missing required field"))
		case errors.As(err, &conflict):
			log.Error("duplicate value", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.FieldError(conflict.Field, "already exists"))
		default:
			log.Error("registration failed", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
		}
		return
	}

	log.Info("user registered", slog.String("email", user.Email))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, user)
}
