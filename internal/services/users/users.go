// Package services содержит операции над пользователями и ролями,
// доступные через HTTP: список, чтение и смену username.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
	"github.com/magabrotheeeer/trading-platform/internal/models"
	"github.com/magabrotheeeer/trading-platform/internal/storage"
)

var (
	// ErrUserNotFound возвращается, если пользователя с таким ID нет.
	ErrUserNotFound = errors.New("user not found")
	// ErrUsernameTaken возвращается, если username занят другим пользователем.
	ErrUsernameTaken = errors.New("username already taken")
)

// UserRepository определяет методы хранилища пользователей.
type UserRepository interface {
	// ListUsers возвращает пользователей; отрицательный limit снимает ограничение.
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	// GetUserByID возвращает пользователя по ID.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	// RenameUser меняет username пользователя.
	RenameUser(ctx context.Context, id int64, username string) (*models.User, error)
}

// RoleRepository определяет методы хранилища ролей.
type RoleRepository interface {
	// ListRoles возвращает все роли.
	ListRoles(ctx context.Context) ([]*models.Role, error)
}

// UserService реализует операции над пользователями и ролями.
type UserService struct {
	users UserRepository
	roles RoleRepository
	log   *slog.Logger
}

// NewUserService создаёт новый экземпляр UserService.
func NewUserService(users UserRepository, roles RoleRepository, log *slog.Logger) *UserService {
	return &UserService{
		users: users,
		roles: roles,
		log:   log,
	}
}

// List возвращает пользователей. Отрицательный limit означает «все».
func (s *UserService) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "services.UserService.List"
	users, err := s.users.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// Get возвращает пользователя по ID или ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	const op = "services.UserService.Get"
	user, err := s.users.GetUserByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// Rename меняет username пользователя id. Новое имя проверяется по тому же
// шаблону, что и при регистрации.
func (s *UserService) Rename(ctx context.Context, id int64, newUsername string) (*models.User, error) {
	const op = "services.UserService.Rename"
	user, err := s.users.RenameUser(ctx, id, newUsername)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	case errors.Is(err, storage.ErrAlreadyExists):
		return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
	case err != nil:
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("user renamed", sl.UserID(id), slog.String("username", user.Username))
	return user, nil
}

// Roles возвращает справочник ролей.
func (s *UserService) Roles(ctx context.Context) ([]*models.Role, error) {
	const op = "services.UserService.Roles"
	roles, err := s.roles.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return roles, nil
}
