package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item представляет складскую позицию. Имя и SKU уникальны, количество
// неотрицательно, цена хранится с двумя знаками после запятой.
// Ссылка на категорию допускает NULL: при удалении категории позиции
// остаются, а ссылка сбрасывается.
type Item struct {
	ID          int64           `json:"id"`
	Category    *Category       `json:"category"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	SKU         string          `json:"sku"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	CreatedBy   *string         `json:"created_by"`
	UpdatedBy   *string         `json:"updated_by"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateItemInput — входные данные для создания позиции.
type CreateItemInput struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description *string         `json:"description"`
	SKU         string          `json:"sku" validate:"required,max=100"`
	CategoryID  int64           `json:"category_id" validate:"required"`
	Quantity    int             `json:"quantity" validate:"gte=0"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

// UpdateItemInput — частичное обновление позиции: применяются только
// присутствующие поля.
type UpdateItemInput struct {
	Name        *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string          `json:"description,omitempty"`
	SKU         *string          `json:"sku,omitempty" validate:"omitempty,max=100"`
	CategoryID  *int64           `json:"category_id,omitempty"`
	Quantity    *int             `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	Price       *decimal.Decimal `json:"price,omitempty"`
}
