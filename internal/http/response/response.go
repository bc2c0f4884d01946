// Package response содержит вспомогательные типы и функции для формирования
// унифицированных JSON‑ответов об ошибках. Успешные ответы отдают ресурс
// как есть, без конверта, поэтому пакет описывает только неуспех.
package response

import (
	"github.com/go-playground/validator"
)

// Response описывает стандартную структуру JSON‑ответа об ошибке.
// Поле Error — общий текст ошибки. Поле Fields — сообщения по отдельным
// полям запроса (опционально, при ошибках валидации).
type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

const (
	// StatusOK — значение статуса для успешного ответа.
	StatusOK = "OK"
	// StatusError — значение статуса для ответа с ошибкой.
	StatusError = "Error"
)

// Error возвращает Response с переданным сообщением.
func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

// FieldErrors возвращает Response с сообщениями по конкретным полям.
func FieldErrors(fields map[string]string) Response {
	return Response{
		Status: StatusError,
		Error:  "validation failed",
		Fields: fields,
	}
}

// FieldError возвращает Response с сообщением по одному полю.
func FieldError(field, msg string) Response {
	return FieldErrors(map[string]string{field: msg})
}

// ValidationError формирует Response на основе ошибок валидатора.
// Каждое нарушение превращается в человеко‑читаемый текст по имени поля.
func ValidationError(errs validator.ValidationErrors) Response {
	fields := make(map[string]string, len(errs))

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			fields[err.Field()] = "this field is required"
		case "max":
			fields[err.Field()] = "value is too long"
		case "gte":
			fields[err.Field()] = "value must not be negative"
		default:
			fields[err.Field()] = "value is not valid"
		}
	}
	return Response{
		Status: StatusError,
		Error:  "validation failed",
		Fields: fields,
	}
}
