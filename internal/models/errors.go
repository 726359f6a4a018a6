package models

import "errors"

// ErrValidation общий признак ошибки валидации записи.
var ErrValidation = errors.New("validation failed")

// ValidationError описывает отказ в записи из-за неверного значения поля.
// Message пригоден для показа клиенту и называет ожидаемый формат.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
