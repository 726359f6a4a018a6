package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/magabrotheeeer/trading-platform/internal/models"
)

const userColumns = `id, email, hashed_password, is_active, is_superuser, is_verified,
			      name_first, name_second, registered_at, role_id, username`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var nameFirst, nameSecond sql.NullString
	if err := row.Scan(&u.ID, &u.Email, &u.HashedPassword, &u.IsActive, &u.IsSuperuser,
		&u.IsVerified, &nameFirst, &nameSecond, &u.RegisteredAt, &u.RoleID, &u.Username); err != nil {
		return nil, err
	}
	u.NameFirst = nameFirst.String
	u.NameSecond = nameSecond.String
	u.RegisteredAt = u.RegisteredAt.UTC()
	return u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateUser проверяет пользователя и сохраняет его. Возвращает запись
// в том виде, в каком она легла в базу (с ID и датой регистрации).
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if user.RegisteredAt.IsZero() {
		user.RegisteredAt = time.Now().UTC()
	}

	query := `INSERT INTO users (email, hashed_password, is_active, is_superuser, is_verified,
			      name_first, name_second, registered_at, role_id, username)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING ` + userColumns
	row := s.DB.QueryRowContext(ctx, query,
		user.Email, user.HashedPassword, user.IsActive, user.IsSuperuser, user.IsVerified,
		nullString(user.NameFirst), nullString(user.NameSecond), user.RegisteredAt, user.RoleID, user.Username)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return u, nil
}

// GetUserByID возвращает пользователя по ID или storage.ErrNotFound.
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE id = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return u, nil
}

// GetUserByEmail возвращает пользователя по email или storage.ErrNotFound.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  WHERE email = $1`
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return u, nil
}

// ListUsers возвращает пользователей в порядке ID.
// Отрицательный limit означает «без ограничения».
func (s *Storage) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var lim sql.NullInt64
	if limit >= 0 {
		lim = sql.NullInt64{Int64: int64(limit), Valid: true}
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + userColumns + `
			  FROM users
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, lim, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// UpdateUser перезаписывает все изменяемые поля пользователя с ID user.ID.
// Валидация выполняется так же, как при создании.
func (s *Storage) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE users
			  SET email = $1, hashed_password = $2, is_active = $3, is_superuser = $4,
			      is_verified = $5, name_first = $6, name_second = $7, role_id = $8, username = $9
			  WHERE id = $10
			  RETURNING ` + userColumns
	row := s.DB.QueryRowContext(ctx, query,
		user.Email, user.HashedPassword, user.IsActive, user.IsSuperuser, user.IsVerified,
		nullString(user.NameFirst), nullString(user.NameSecond), user.RoleID, user.Username, user.ID)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return u, nil
}

// RenameUser меняет username пользователя. Новое имя проходит ту же
// проверку формата, что и при регистрации.
func (s *Storage) RenameUser(ctx context.Context, id int64, username string) (*models.User, error) {
	const op = "storage.RenameUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if err := models.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE users
			  SET username = $1
			  WHERE id = $2
			  RETURNING ` + userColumns
	u, err := scanUser(s.DB.QueryRowContext(ctx, query, username, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return u, nil
}
