// Package response содержит типы и функции для формирования JSON-ответов
// HTTP-обработчиков обоих сервисов. Формы ответов повторяют внешний
// контракт проката: ошибки уходят как {"error": ...}, подтверждения —
// как {"message": ...}.
package response

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

// ErrorResponse — структура ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error" example:"Internal Server Error"`
}

// MessageResponse — структура ответа с подтверждением операции.
type MessageResponse struct {
	Message string `json:"message" example:"Vinyl rented successfully"`
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// Message возвращает MessageResponse с переданным сообщением.
func Message(msg string) MessageResponse {
	return MessageResponse{Message: msg}
}

// ValidationError формирует ErrorResponse на основе ошибок валидации.
// Каждое нарушение формируется в человеко-читаемый текст, объединённый
// через запятую.
func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errsMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "email":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be a valid email", err.Field()))
		case "gt":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be greater than %s", err.Field(), err.Param()))
		case "gte":
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s must be %s or greater", err.Field(), err.Param()))
		default:
			errsMsgs = append(errsMsgs, fmt.Sprintf("field %s is not a valid", err.Field()))
		}
	}
	return ErrorResponse{Error: strings.Join(errsMsgs, ", ")}
}
