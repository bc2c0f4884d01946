// Package category содержит бизнес-логику справочника категорий.
package category

import (
	"context"
	"log/slog"

	"github.com/invtrack/inventtrack/internal/models"
)

// CategoryRepository описывает контракт хранилища категорий.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, search string) ([]*models.Category, error)
}

// Service реализует операции над категориями.
type Service struct {
	repo CategoryRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo CategoryRepository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

// Create добавляет новую категорию.
func (s *Service) Create(ctx context.Context, input models.CategoryInput) (*models.Category, error) {
	created, err := s.repo.CreateCategory(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	s.log.Info("created category", slog.Int64("id", created.ID), slog.String("name", created.Name))
	return created, nil
}

// Update переименовывает категорию.
func (s *Service) Update(ctx context.Context, id int64, input models.CategoryInput) (*models.Category, error) {
	updated, err := s.repo.UpdateCategory(ctx, id, input.Name)
	if err != nil {
		return nil, err
	}
	s.log.Info("updated category", slog.Int64("id", id))
	return updated, nil
}

// Delete удаляет категорию. Товары категории не удаляются, а отвязываются.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted category", slog.Int64("id", id))
	return nil
}

// List возвращает категории, при непустом search — отфильтрованные по
// подстроке имени без учета регистра.
func (s *Service) List(ctx context.Context, search string) ([]*models.Category, error) {
	return s.repo.ListCategories(ctx, search)
}
