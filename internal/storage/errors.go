package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound возвращается, когда запись с указанным идентификатором отсутствует.
var ErrNotFound = errors.New("storage: not found")

// ErrCategoryMissing возвращается, когда позиция ссылается на несуществующую категорию.
var ErrCategoryMissing = errors.New("storage: referenced category does not exist")

// ConflictError — нарушение уникальности с указанием поля,
// по которому произошел конфликт.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("storage: duplicate value for field %q", e.Field)
}

// имена ограничений уникальности и поля, на которые они отображаются
var conflictFields = map[string]string{
	"users_email_key":     "email",
	"categories_name_key": "name",
	"items_name_key":      "name",
	"items_sku_key":       "sku",
}

// mapError переводит ошибки драйвера в доменные: отсутствие строк,
// нарушения уникальности и внешнего ключа на категорию.
func mapError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			field, ok := conflictFields[pgErr.ConstraintName]
			if !ok {
				field = pgErr.ConstraintName
			}
			return fmt.Errorf("%s: %w", op, &ConflictError{Field: field})
		case pgerrcode.ForeignKeyViolation:
			if pgErr.ConstraintName == "items_category_id_fkey" {
				return fmt.Errorf("%s: %w", op, ErrCategoryMissing)
			}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
