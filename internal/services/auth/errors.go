package services

import "errors"

var (
	// ErrUserAlreadyExists: e-mail или username уже заняты.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound: пользователь с таким e-mail или ID не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrBadCredentials: неверная пара e-mail/пароль или пользователь неактивен.
	ErrBadCredentials = errors.New("bad credentials")
	// ErrInvalidPassword: пароль не прошёл парольную политику.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrBadToken: токен сброса или верификации недействителен.
	ErrBadToken = errors.New("bad token")
	// ErrAlreadyVerified: e-mail пользователя уже подтверждён.
	ErrAlreadyVerified = errors.New("user already verified")
	// ErrInactiveUser: операция недоступна неактивному пользователю.
	ErrInactiveUser = errors.New("user is inactive")
)
