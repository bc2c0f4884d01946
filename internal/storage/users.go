package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/invtrack/inventtrack/internal/models"
)

const userColumns = `id, email, first_name, last_name, password_hash,
			      is_active, is_staff, is_superuser, date_joined, updated_at`

func scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var lastName sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.FirstName, &lastName, &u.PasswordHash,
		&u.IsActive, &u.IsStaff, &u.IsSuperuser, &u.DateJoined, &u.UpdatedAt); err != nil {
		return nil, err
	}
	if lastName.Valid {
		u.LastName = &lastName.String
	}
	return u, nil
}

// CreateUser сохраняет нового пользователя и возвращает созданную запись.
// Привилегированный пользователь всегда сохраняется со взведенным staff-флагом.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if user.IsSuperuser {
		user.IsStaff = true
	}
	query := `INSERT INTO users (email, first_name, last_name, password_hash,
			      is_active, is_staff, is_superuser)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + userColumns
	row := s.DB.QueryRowContext(ctx, query,
		user.Email, user.FirstName, user.LastName, user.PasswordHash,
		user.IsActive, user.IsStaff, user.IsSuperuser)
	created, err := scanUser(row)
	if err != nil {
		return nil, mapError(op, err)
	}
	return created, nil
}

// GetUserByEmail возвращает пользователя по адресу почты.
// Сравнение регистронезависимое.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE lower(email) = lower($1)`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, mapError(op, err)
	}
	return u, nil
}

// GetUser возвращает пользователя по его идентификатору.
func (s *Storage) GetUser(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE id = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(op, err)
	}
	return u, nil
}

// UpdateUser применяет частичное обновление: изменяются только поля,
// присутствующие во входной структуре. Если включается is_superuser,
// is_staff взводится тем же запросом.
func (s *Storage) UpdateUser(ctx context.Context, id int64, input models.UpdateUserInput, passwordHash *string) (*models.User, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	sets := []string{"updated_at = now()"}
	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if input.Email != nil {
		sets = append(sets, "email = "+arg(*input.Email))
	}
	if input.FirstName != nil {
		sets = append(sets, "first_name = "+arg(*input.FirstName))
	}
	if input.LastName != nil {
		sets = append(sets, "last_name = "+arg(*input.LastName))
	}
	if passwordHash != nil {
		sets = append(sets, "password_hash = "+arg(*passwordHash))
	}
	if input.IsActive != nil {
		sets = append(sets, "is_active = "+arg(*input.IsActive))
	}
	if input.IsSuperuser != nil {
		sets = append(sets, "is_superuser = "+arg(*input.IsSuperuser))
		if *input.IsSuperuser {
			sets = append(sets, "is_staff = TRUE")
		}
	}

	query := `UPDATE users SET ` + strings.Join(sets, ", ") +
		` WHERE id = ` + arg(id) +
		` RETURNING ` + userColumns
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, mapError(op, err)
	}
	return u, nil
}
