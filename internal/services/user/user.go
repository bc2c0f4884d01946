// Package user содержит бизнес-логику частичного обновления профиля.
package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/invtrack/inventtrack/internal/lib/password"
	"github.com/invtrack/inventtrack/internal/models"
	authservice "github.com/invtrack/inventtrack/internal/services/auth"
)

// UserRepository описывает контракт хранилища для обновления пользователей.
type UserRepository interface {
	// UpdateUser применяет частичное обновление и возвращает новую запись.
	UpdateUser(ctx context.Context, id int64, input models.UpdateUserInput, passwordHash *string) (*models.User, error)
}

// Service реализует обновление профиля пользователя.
type Service struct {
	repo UserRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo UserRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Update применяет частичное обновление: изменяются только присутствующие
// поля. Пароль хэшируется, почта нормализуется. Взведение is_superuser
// принудительно взводит и is_staff — это гарантирует хранилище в том же
// запросе.
func (s *Service) Update(ctx context.Context, id int64, input models.UpdateUserInput) (*models.User, error) {
	const op = "user.Update"

	if input.Email != nil {
		normalized := authservice.NormalizeEmail(*input.Email)
		input.Email = &normalized
	}

	var passwordHash *string
	if input.Password != nil {
		hashed, err := password.GetHash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		passwordHash = &hashed
	}

	updated, err := s.repo.UpdateUser(ctx, id, input, passwordHash)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated user", slog.Int64("id", id))
	return updated, nil
}
