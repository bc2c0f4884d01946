package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/invtrack/inventtrack/internal/models"
)

const itemSelect = `SELECT i.id, i.name, i.description, i.sku, i.quantity, i.price,
			      i.created_at, i.updated_at,
			      c.id, c.name, c.created_at, c.updated_at,
			      cu.email, uu.email
			  FROM items i
			  LEFT JOIN categories c ON c.id = i.category_id
			  LEFT JOIN users cu ON cu.id = i.created_by
			  LEFT JOIN users uu ON uu.id = i.updated_by`

func scanItem(row *sql.Row) (*models.Item, error) {
	i := &models.Item{}
	var (
		description      sql.NullString
		catID            sql.NullInt64
		catName          sql.NullString
		catCreated       sql.NullTime
		catUpdated       sql.NullTime
		createdBy, updBy sql.NullString
	)
	if err := row.Scan(&i.ID, &i.Name, &description, &i.SKU, &i.Quantity, &i.Price,
		&i.CreatedAt, &i.UpdatedAt,
		&catID, &catName, &catCreated, &catUpdated,
		&createdBy, &updBy); err != nil {
		return nil, err
	}
	if description.Valid {
		i.Description = &description.String
	}
	if catID.Valid {
		i.Category = &models.Category{
			ID:        catID.Int64,
			Name:      catName.String,
			CreatedAt: catCreated.Time,
			UpdatedAt: catUpdated.Time,
		}
	}
	if createdBy.Valid {
		i.CreatedBy = &createdBy.String
	}
	if updBy.Valid {
		i.UpdatedBy = &updBy.String
	}
	return i, nil
}

// CreateItem сохраняет новую позицию. Создатель и последний редактор —
// пользователь, выполнивший запрос.
func (s *Storage) CreateItem(ctx context.Context, input models.CreateItemInput, actorID int64) (*models.Item, error) {
	const op = "storage.CreateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO items (name, description, sku, category_id, quantity, price,
			      created_by, updated_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			  RETURNING id`
	var id int64
	if err := s.DB.QueryRowContext(ctx, query,
		input.Name, input.Description, input.SKU, input.CategoryID,
		input.Quantity, input.Price, actorID).Scan(&id); err != nil {
		return nil, mapError(op, err)
	}
	return s.GetItem(ctx, id)
}

// GetItem возвращает позицию с категорией и адресами создателя и
// последнего редактора.
func (s *Storage) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	const op = "storage.GetItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := itemSelect + `
			  WHERE i.id = $1`
	item, err := scanItem(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapError(op, err)
	}
	return item, nil
}

// UpdateItem применяет частичное обновление позиции и помечает actor
// последним редактором.
func (s *Storage) UpdateItem(ctx context.Context, id int64, input models.UpdateItemInput, actorID int64) (*models.Item, error) {
	const op = "storage.UpdateItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	args := []any{}
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	sets := []string{"updated_at = now()", "updated_by = " + arg(actorID)}

	if input.Name != nil {
		sets = append(sets, "name = "+arg(*input.Name))
	}
	if input.Description != nil {
		sets = append(sets, "description = "+arg(*input.Description))
	}
	if input.SKU != nil {
		sets = append(sets, "sku = "+arg(*input.SKU))
	}
	if input.CategoryID != nil {
		sets = append(sets, "category_id = "+arg(*input.CategoryID))
	}
	if input.Quantity != nil {
		sets = append(sets, "quantity = "+arg(*input.Quantity))
	}
	if input.Price != nil {
		sets = append(sets, "price = "+arg(*input.Price))
	}

	query := `UPDATE items SET ` + strings.Join(sets, ", ") +
		` WHERE id = ` + arg(id) + ` RETURNING id`
	var updatedID int64
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&updatedID); err != nil {
		return nil, mapError(op, err)
	}
	return s.GetItem(ctx, updatedID)
}

// DeleteItem удаляет позицию по идентификатору.
func (s *Storage) DeleteItem(ctx context.Context, id int64) error {
	const op = "storage.DeleteItem"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}
