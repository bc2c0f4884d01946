// Package item содержит бизнес-логику складских позиций с кэшем чтения.
//
// Чтение идет сквозь кэш: попадание возвращается без похода в базу,
// промах подгружает запись из хранилища и кладет ее в кэш. Любая запись
// сперва фиксируется в базе и только затем отражается в кэше, поэтому
// кэш никогда не опережает хранилище. Ошибки кэша не валят запрос —
// они логируются, а операция продолжается по базе.
package item

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/invtrack/inventtrack/internal/lib/sl"
	"github.com/invtrack/inventtrack/internal/models"
)

// ItemRepository описывает контракт хранилища позиций.
type ItemRepository interface {
	CreateItem(ctx context.Context, input models.CreateItemInput, actorID int64) (*models.Item, error)
	GetItem(ctx context.Context, id int64) (*models.Item, error)
	UpdateItem(ctx context.Context, id int64, input models.UpdateItemInput, actorID int64) (*models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

// Cache описывает контракт key/value кэша.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует операции над позициями.
type Service struct {
	repo  ItemRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo ItemRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("item_%d", id)
}

// Create добавляет позицию и кладет созданную запись в кэш.
func (s *Service) Create(ctx context.Context, input models.CreateItemInput, actorID int64) (*models.Item, error) {
	created, err := s.repo.CreateItem(ctx, input, actorID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(created)
	s.log.Info("created item", slog.Int64("id", created.ID), slog.String("sku", created.SKU))
	return created, nil
}

// Read возвращает позицию по идентификатору, сперва заглянув в кэш.
// Ошибка чтения кэша трактуется как промах.
func (s *Service) Read(ctx context.Context, id int64) (*models.Item, error) {
	key := cacheKey(id)

	var cached models.Item
	found, err := s.cache.Get(key, &cached)
	if err != nil {
		s.log.Warn("cache get failed", slog.String("key", key), sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	item, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(item)
	return item, nil
}

// Update применяет частичное обновление, затем переписывает кэш:
// старая запись инвалидируется, новая кладется на ее место.
func (s *Service) Update(ctx context.Context, id int64, input models.UpdateItemInput, actorID int64) (*models.Item, error) {
	updated, err := s.repo.UpdateItem(ctx, id, input, actorID)
	if err != nil {
		return nil, err
	}
	s.cacheInvalidate(id)
	s.cacheSet(updated)
	s.log.Info("updated item", slog.Int64("id", id))
	return updated, nil
}

// Delete удаляет позицию и инвалидирует кэш.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.cacheInvalidate(id)
	s.log.Info("deleted item", slog.Int64("id", id))
	return nil
}

func (s *Service) cacheSet(item *models.Item) {
	key := cacheKey(item.ID)
	if err := s.cache.Set(key, item, 0); err != nil {
		s.log.Warn("cache set failed", slog.String("key", key), sl.Err(err))
	}
}

func (s *Service) cacheInvalidate(id int64) {
	key := cacheKey(id)
	if err := s.cache.Invalidate(key); err != nil {
		s.log.Warn("cache invalidate failed", slog.String("key", key), sl.Err(err))
	}
}
