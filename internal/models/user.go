// Package models содержит структуры данных уровня домена: пользователи,
// категории и позиции склада, а также входные структуры запросов.
package models

import "time"

// User представляет учетную запись пользователя.
// Пароль хранится только в виде bcrypt-хэша и наружу не сериализуется.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     *string   `json:"last_name,omitempty"`
	IsActive     bool      `json:"is_active"`
	IsStaff      bool      `json:"is_staff"`
	IsSuperuser  bool      `json:"is_superuser"`
	DateJoined   time.Time `json:"date_joined"`
	UpdatedAt    time.Time `json:"updated_at"`
	PasswordHash string    `json:"-"`
}

// UpdateUserInput описывает частичное обновление пользователя:
// изменяются только те поля, которые присутствуют в запросе.
type UpdateUserInput struct {
	Email       *string `json:"email,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	Password    *string `json:"password,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
}

// IsEmpty сообщает, содержит ли запрос хотя бы одно поле для обновления.
func (u UpdateUserInput) IsEmpty() bool {
	return u.Email == nil && u.FirstName == nil && u.LastName == nil &&
		u.Password == nil && u.IsActive == nil && u.IsSuperuser == nil
}
