// Package services реализует менеджер пользователей: регистрацию, вход,
// сброс пароля, подтверждение e-mail и изменение профиля.
//
// После каждой операции менеджер отправляет событие жизненного цикла.
// Отправка не блокирует запрос, и её ошибки на результат не влияют.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/trading-platform/internal/events"
	"github.com/magabrotheeeer/trading-platform/internal/lib/jwt"
	"github.com/magabrotheeeer/trading-platform/internal/lib/password"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
	"github.com/magabrotheeeer/trading-platform/internal/models"
	"github.com/magabrotheeeer/trading-platform/internal/storage"
)

// UserRepository описывает контракт хранилища пользователей.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает сохранённую запись.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	// GetUserByID возвращает пользователя по ID или storage.ErrNotFound.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	// GetUserByEmail возвращает пользователя по e-mail или storage.ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateUser перезаписывает изменяемые поля пользователя.
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)
}

// Tokens группирует выпуск токенов доступа, сброса пароля и верификации.
type Tokens struct {
	Access jwt.Maker
	Reset  jwt.Maker
	Verify jwt.Maker
}

// Manager управляет жизненным циклом пользователя.
type Manager struct {
	users  UserRepository
	tokens Tokens
	events events.Emitter
	log    *slog.Logger
}

// NewManager создаёт менеджер пользователей.
func NewManager(users UserRepository, tokens Tokens, emitter events.Emitter, log *slog.Logger) *Manager {
	return &Manager{
		users:  users,
		tokens: tokens,
		events: emitter,
		log:    log,
	}
}

// Register создаёт пользователя.
//
// Порядок проверок: парольная политика, занятость e-mail, хеширование,
// запись с ролью по умолчанию. Роль и флаги из запроса не берутся:
// новый пользователь активен, не суперпользователь и не подтверждён.
func (m *Manager) Register(ctx context.Context, req models.UserCreate) (*models.User, error) {
	const op = "services.Manager.Register"

	if err := password.Validate(req.Password); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidPassword, err)
	}

	_, err := m.users.GetUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%s: %w", op, ErrUserAlreadyExists)
	case !errors.Is(err, storage.ErrNotFound):
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	created, err := m.users.CreateUser(ctx, models.User{
		Email:          req.Email,
		HashedPassword: hashed,
		IsActive:       true,
		NameFirst:      req.NameFirst,
		NameSecond:     req.NameSecond,
		RoleID:         models.DefaultRoleID,
		Username:       req.Username,
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.log.Info("user registered", sl.UserID(created.ID))
	m.events.Emit(ctx, events.Event{Kind: events.KindRegistered, UserID: created.ID, Email: created.Email})
	return created, nil
}

// Authenticate проверяет e-mail и пароль. Неизвестный e-mail, неверный
// пароль и неактивный пользователь неразличимы для вызывающего.
func (m *Manager) Authenticate(ctx context.Context, email, rawPassword string) (*models.User, error) {
	const op = "services.Manager.Authenticate"

	user, err := m.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		// время ответа не должно зависеть от того, существует ли e-mail
		_, _ = password.GetHash(rawPassword)
		return nil, fmt.Errorf("%s: %w", op, ErrBadCredentials)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := password.CompareHash(user.HashedPassword, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrBadCredentials)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%s: %w", op, ErrBadCredentials)
	}
	return user, nil
}

// Login аутентифицирует пользователя и выпускает токен доступа.
func (m *Manager) Login(ctx context.Context, email, rawPassword string) (string, *models.User, error) {
	const op = "services.Manager.Login"

	user, err := m.Authenticate(ctx, email, rawPassword)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	token, err := m.tokens.Access.GenerateToken(user.ID, "", "")
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// CurrentUser возвращает активного пользователя по токену доступа.
func (m *Manager) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	const op = "services.Manager.CurrentUser"

	claims, err := m.tokens.Access.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrBadToken, err)
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrBadToken, err)
	}
	user, err := m.users.GetUserByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrBadToken)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%s: %w", op, ErrInactiveUser)
	}
	return user, nil
}

// ForgotPassword выпускает токен сброса пароля и отправляет его в событии.
// Токен перестаёт действовать, как только меняется пароль.
func (m *Manager) ForgotPassword(ctx context.Context, email string) error {
	const op = "services.Manager.ForgotPassword"

	user, err := m.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !user.IsActive {
		return fmt.Errorf("%s: %w", op, ErrInactiveUser)
	}

	fingerprint, err := password.Fingerprint(user.HashedPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	token, err := m.tokens.Reset.GenerateToken(user.ID, "", fingerprint)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.events.Emit(ctx, events.Event{Kind: events.KindForgotPassword, UserID: user.ID, Email: user.Email, Token: token})
	return nil
}

// ResetPassword меняет пароль по токену сброса.
func (m *Manager) ResetPassword(ctx context.Context, token, newPassword string) (*models.User, error) {
	const op = "services.Manager.ResetPassword"

	claims, err := m.tokens.Reset.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrBadToken, err)
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrBadToken, err)
	}
	user, err := m.users.GetUserByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrBadToken)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !password.MatchFingerprint(claims.PasswordFingerprint, user.HashedPassword) {
		return nil, fmt.Errorf("%s: %w: password already changed", op, ErrBadToken)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%s: %w", op, ErrBadToken)
	}

	if err := password.Validate(newPassword); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidPassword, err)
	}
	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.HashedPassword = hashed

	updated, err := m.users.UpdateUser(ctx, *user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.events.Emit(ctx, events.Event{Kind: events.KindResetPassword, UserID: updated.ID, Email: updated.Email})
	return updated, nil
}

// RequestVerify выпускает токен подтверждения e-mail и отправляет его в событии.
func (m *Manager) RequestVerify(ctx context.Context, email string) error {
	const op = "services.Manager.RequestVerify"

	user, err := m.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !user.IsActive {
		return fmt.Errorf("%s: %w", op, ErrInactiveUser)
	}
	if user.IsVerified {
		return fmt.Errorf("%s: %w", op, ErrAlreadyVerified)
	}

	token, err := m.tokens.Verify.GenerateToken(user.ID, user.Email, "")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.events.Emit(ctx, events.Event{Kind: events.KindRequestVerify, UserID: user.ID, Email: user.Email, Token: token})
	return nil
}

// Verify подтверждает e-mail по токену. Токен привязан к e-mail,
// на который был выпущен: после смены адреса он недействителен.
func (m *Manager) Verify(ctx context.Context, token string) (*models.User, error) {
	const op = "services.Manager.Verify"

	claims, err := m.tokens.Verify.ParseToken(token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrBadToken, err)
	}
	id, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrBadToken, err)
	}
	user, err := m.users.GetUserByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrBadToken)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if claims.Email == "" || claims.Email != user.Email {
		return nil, fmt.Errorf("%s: %w: email mismatch", op, ErrBadToken)
	}
	if user.IsVerified {
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadyVerified)
	}

	user.IsVerified = true
	updated, err := m.users.UpdateUser(ctx, *user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.events.Emit(ctx, events.Event{Kind: events.KindVerified, UserID: updated.ID, Email: updated.Email})
	return updated, nil
}

// UpdateProfile применяет частичное обновление к профилю пользователя userID.
// Роль и флаги здесь не меняются. Смена e-mail снимает подтверждение.
func (m *Manager) UpdateProfile(ctx context.Context, userID int64, upd models.UserUpdate) (*models.User, error) {
	const op = "services.Manager.UpdateProfile"

	user, err := m.users.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if upd.Empty() {
		return user, nil
	}

	if upd.Email != nil && *upd.Email != user.Email {
		_, err := m.users.GetUserByEmail(ctx, *upd.Email)
		switch {
		case err == nil:
			return nil, fmt.Errorf("%s: %w", op, ErrUserAlreadyExists)
		case !errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		user.Email = *upd.Email
		user.IsVerified = false
	}
	if upd.Password != nil {
		if err := password.Validate(*upd.Password); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", op, ErrInvalidPassword, err)
		}
		hashed, err := password.GetHash(*upd.Password)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		user.HashedPassword = hashed
	}
	if upd.NameFirst != nil {
		user.NameFirst = *upd.NameFirst
	}
	if upd.NameSecond != nil {
		user.NameSecond = *upd.NameSecond
	}
	if upd.Username != nil {
		user.Username = *upd.Username
	}

	updated, err := m.users.UpdateUser(ctx, *user)
	if errors.Is(err, storage.ErrAlreadyExists) {
		return nil, fmt.Errorf("%s: %w", op, ErrUserAlreadyExists)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	m.events.Emit(ctx, events.Event{Kind: events.KindUpdated, UserID: updated.ID, Email: updated.Email})
	return updated, nil
}
