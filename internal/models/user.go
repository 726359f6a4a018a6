// Package models содержит доменные модели: роли, пользователей и сделки,
// а также правила валидации, которые применяются при каждой записи.
package models

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

// Ограничения длины полей пользователя.
const (
	MaxLenEmail    = 150
	MaxLenPassword = 1024
	MaxLenName     = 50
	MaxLenUsername = 100
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-z]+\.[a-z]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

const invalidFormat = "invalid %s format: expected %s with latin letters (a-z or A-Z), " +
	"numbers (0-9), dots (.), underscore (_) or hyphen (-)"

// Сообщения об ошибках формата.
var (
	InvalidEmailMessage    = fmt.Sprintf(invalidFormat, "email", "example_email@email.com")
	InvalidUsernameMessage = fmt.Sprintf(invalidFormat, "username", "example_username")
)

// EmailValid сообщает, подходит ли строка под шаблон e-mail.
// Домен допускает только строчные латинские буквы и одну точку.
func EmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

// UsernameValid сообщает, подходит ли строка под шаблон username.
func UsernameValid(username string) bool {
	return usernamePattern.MatchString(username)
}

// Account — сущность, владеющая учётными данными.
type Account interface {
	AccountID() int64
	AccountEmail() string
	PasswordHash() string
	Active() bool
}

// User — зарегистрированный пользователь системы.
// Открытый пароль не хранится, только его хеш.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsActive       bool      `json:"is_active"`
	IsSuperuser    bool      `json:"is_superuser"`
	IsVerified     bool      `json:"is_verified"`
	NameFirst      string    `json:"name_first"`
	NameSecond     string    `json:"name_second"`
	RegisteredAt   time.Time `json:"registered_at"`
	RoleID         int64     `json:"role_id"`
	Username       string    `json:"username"`
}

var _ Account = (*User)(nil)

func (u *User) AccountID() int64     { return u.ID }
func (u *User) AccountEmail() string { return u.Email }
func (u *User) PasswordHash() string { return u.HashedPassword }
func (u *User) Active() bool         { return u.IsActive }

// ValidateEmail проверяет e-mail по шаблону и длине.
func ValidateEmail(email string) error {
	if utf8.RuneCountInString(email) > MaxLenEmail {
		return invalid("email", fmt.Sprintf("email must be at most %d characters", MaxLenEmail))
	}
	if !EmailValid(email) {
		return invalid("email", InvalidEmailMessage)
	}
	return nil
}

// ValidateUsername проверяет username по шаблону и длине.
func ValidateUsername(username string) error {
	if utf8.RuneCountInString(username) > MaxLenUsername {
		return invalid("username", fmt.Sprintf("username must be at most %d characters", MaxLenUsername))
	}
	if !UsernameValid(username) {
		return invalid("username", InvalidUsernameMessage)
	}
	return nil
}

// Validate проверяет пользователя перед вставкой или обновлением.
func (u *User) Validate() error {
	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if err := ValidateUsername(u.Username); err != nil {
		return err
	}
	if err := validateName("name_first", u.NameFirst); err != nil {
		return err
	}
	if err := validateName("name_second", u.NameSecond); err != nil {
		return err
	}
	if u.HashedPassword == "" || len(u.HashedPassword) > MaxLenPassword {
		return invalid("hashed_password", "hashed password is missing or too long")
	}
	if u.RoleID <= 0 {
		return invalid("role_id", "role is required")
	}
	return nil
}

func validateName(field, value string) error {
	if utf8.RuneCountInString(value) > MaxLenName {
		return invalid(field, fmt.Sprintf("%s must be at most %d characters", field, MaxLenName))
	}
	return nil
}
