package storage

import (
	"context"
	"fmt"

	"github.com/invtrack/inventtrack/internal/models"
)

// CreateCategory сохраняет новую категорию и возвращает созданную запись.
func (s *Storage) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	const op = "storage.CreateCategory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO categories (name)
			  VALUES ($1)
			  RETURNING id, name, created_at, updated_at`
	c := &models.Category{}
	if err := s.DB.QueryRowContext(ctx, query, name).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, mapError(op, err)
	}
	return c, nil
}

// UpdateCategory переименовывает категорию по идентификатору.
func (s *Storage) UpdateCategory(ctx context.Context, id int64, name string) (*models.Category, error) {
	const op = "storage.UpdateCategory"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE categories
			  SET name = $1, updated_at = now()
			  WHERE id = $2
			  RETURNING id, name, created_at, updated_at`
	c := &models.Category{}
	if err := s.DB.QueryRowContext(ctx, query, name, id).Scan(
		&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, mapError(op, err)
	}
	return c, nil
}

// DeleteCategory удаляет категорию, предварительно отвязав от нее все
// позиции. Отвязка и удаление выполняются в одной транзакции: позиции
// никогда не удаляются вместе с категорией.
func (s *Storage) DeleteCategory(ctx context.Context, id int64) error {
	const op = "storage.DeleteCategory"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx,
		`UPDATE items SET category_id = NULL WHERE category_id = $1`, id); err != nil {
		return mapError(op, err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return mapError(op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListCategories возвращает все категории либо отфильтрованные по
// регистронезависимому вхождению подстроки в имя.
func (s *Storage) ListCategories(ctx context.Context, searchTerm string) ([]*models.Category, error) {
	const op = "storage.ListCategories"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, created_at, updated_at
			  FROM categories
			  WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
			  ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query, searchTerm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Category
	for rows.Next() {
		c := &models.Category{}
		if err = rows.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
