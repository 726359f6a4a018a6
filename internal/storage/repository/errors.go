package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/trading-platform/internal/storage"
)

// mapError переводит ошибки драйвера в ошибки пакета storage.
// Неизвестные ошибки возвращаются без изменений.
func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s", storage.ErrAlreadyExists, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return fmt.Errorf("%w: %s", storage.ErrInvalidReference, pgErr.ConstraintName)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException:
		return fmt.Errorf("%w: %s", storage.ErrConstraint, pgErr.ConstraintName)
	}
	return err
}
