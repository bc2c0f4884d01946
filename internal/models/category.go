package models

import "time"

// Category представляет категорию складских позиций. Имя уникально.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryInput — входные данные для создания и обновления категории.
type CategoryInput struct {
	Name string `json:"name" validate:"required,max=255"`
}
