// Package auth содержит бизнес-логику регистрации пользователей и входа
// с выпуском токена доступа.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/invtrack/inventtrack/internal/lib/jwt"
	"github.com/invtrack/inventtrack/internal/lib/password"
	"github.com/invtrack/inventtrack/internal/models"
	"github.com/invtrack/inventtrack/internal/storage"
)

// ErrMissingField возвращается при отсутствии обязательного поля на создании.
var ErrMissingField = errors.New("auth: required field is missing")

// ErrInvalidCredentials возвращается при любом отказе входа: пользователь
// не найден, пароль не совпал либо учетная запись деактивирована.
// Причина наружу не раскрывается.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// UserRepository описывает контракт хранилища пользователей.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает созданную запись.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByEmail возвращает пользователя по адресу почты.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Service отвечает за создание учетных записей и выпуск токенов.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// NormalizeEmail приводит доменную часть адреса к нижнему регистру.
// Уникальность в хранилище дополнительно регистронезависимая.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

// Register создает нового пользователя с хэшированием пароля.
// Привилегированная учетная запись получает и staff-флаг.
func (s *Service) Register(ctx context.Context, email, firstName string, lastName *string, rawPassword string, superuser bool) (*models.User, error) {
	const op = "auth.Register"
	if email == "" || firstName == "" || rawPassword == "" {
		return nil, ErrMissingField
	}
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Email:        NormalizeEmail(email),
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hashed,
		IsActive:     true,
		IsStaff:      superuser,
		IsSuperuser:  superuser,
	}
	return s.users.CreateUser(ctx, user)
}

// CreateSuperuser создает привилегированного пользователя.
func (s *Service) CreateSuperuser(ctx context.Context, email, firstName string, lastName *string, rawPassword string) (*models.User, error) {
	return s.Register(ctx, email, firstName, lastName, rawPassword, true)
}

// Login проверяет учетные данные и выпускает токен доступа со снимком
// разрешений пользователя на момент выпуска.
func (s *Service) Login(ctx context.Context, email, rawPassword string) (string, error) {
	const op = "auth.Login"
	user, err := s.users.GetUserByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if !user.IsActive {
		return "", ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}
