// Package password реализует хеширование паролей и проверку парольной политики.
//
// Хеш строится через bcrypt; открытый пароль нигде не сохраняется.
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxLength предел bcrypt для длины пароля в байтах.
const MaxLength = 72

var (
	// ErrEmpty возвращается для пустого пароля.
	ErrEmpty = errors.New("password must not be empty")
	// ErrTooLong возвращается, если пароль длиннее MaxLength байт.
	ErrTooLong = fmt.Errorf("password must be at most %d bytes", MaxLength)
	// ErrMismatch возвращается, если пароль не соответствует хешу.
	ErrMismatch = errors.New("password does not match")
)

// Validate проверяет пароль на соответствие парольной политике.
func Validate(password string) error {
	switch {
	case password == "":
		return ErrEmpty
	case len(password) > MaxLength:
		return ErrTooLong
	}
	return nil
}

// GetHash принимает пароль пользователя и возвращает его bcrypt‑хэш.
func GetHash(password string) (string, error) {
	const op = "password.GetHash"
	if err := Validate(password); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// CompareHash сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает nil, если пароль соответствует хэшу, иначе ErrMismatch.
func CompareHash(originalHash, externalPassword string) error {
	const op = "password.CompareHash"
	err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalPassword))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return fmt.Errorf("%s: %w", op, ErrMismatch)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Fingerprint строит отпечаток уже захешированного пароля.
// Отпечаток кладётся в токен сброса, чтобы токен переставал действовать после смены пароля.
func Fingerprint(hashedPassword string) (string, error) {
	return GetHash(hashedPassword)
}

// MatchFingerprint проверяет, что отпечаток построен по текущему хешу пароля.
func MatchFingerprint(fingerprint, hashedPassword string) bool {
	return CompareHash(fingerprint, hashedPassword) == nil
}
