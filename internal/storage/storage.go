// Package storage объявляет ошибки, общие для всех реализаций хранилища.
package storage

import "errors"

var (
	// ErrNotFound запись не найдена.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists нарушено ограничение уникальности.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrInvalidReference ссылка на несуществующую запись (внешний ключ).
	ErrInvalidReference = errors.New("invalid reference")
	// ErrConstraint нарушено ограничение схемы (CHECK, NOT NULL, длина).
	ErrConstraint = errors.New("constraint violation")
)
