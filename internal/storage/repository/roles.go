package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/trading-platform/internal/models"
)

func scanRole(row rowScanner) (*models.Role, error) {
	r := &models.Role{}
	var permissions []byte
	if err := row.Scan(&r.ID, &r.Name, &permissions); err != nil {
		return nil, err
	}
	if len(permissions) > 0 {
		r.Permissions = permissions
	}
	return r, nil
}

// CreateRole сохраняет новую роль. Название проверяется и здесь,
// и ограничением valid_role_name_constraint в базе.
func (s *Storage) CreateRole(ctx context.Context, role models.Role) (*models.Role, error) {
	const op = "storage.CreateRole"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if err := role.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var permissions any
	if len(role.Permissions) > 0 {
		permissions = string(role.Permissions)
	}

	query := `INSERT INTO roles (name, permissions)
			  VALUES ($1, $2)
			  RETURNING id, name, permissions`
	r, err := scanRole(s.DB.QueryRowContext(ctx, query, string(role.Name), permissions))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return r, nil
}

// GetRole возвращает роль по ID или storage.ErrNotFound.
func (s *Storage) GetRole(ctx context.Context, id int64) (*models.Role, error) {
	const op = "storage.GetRole"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, permissions FROM roles WHERE id = $1`
	r, err := scanRole(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}
	return r, nil
}

// ListRoles возвращает все роли в порядке ID.
func (s *Storage) ListRoles(ctx context.Context) ([]*models.Role, error) {
	const op = "storage.ListRoles"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT id, name, permissions FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	roles := make([]*models.Role, 0, len(models.RoleNames()))
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		roles = append(roles, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return roles, nil
}
