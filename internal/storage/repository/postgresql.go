// Package repository реализует хранилище пользователей и ролей
// на основе PostgreSQL. Инварианты уникальности, внешних ключей и
// допустимых имён ролей обеспечивает сама база данных.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL.
type Storage struct {
	DB *sql.DB
}

// New открывает подключение к PostgreSQL и проверяет его доступность.
func New(ctx context.Context, storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// SetPoolLimits задаёт ограничения пула database/sql. Нулевые значения не меняют настройки.
func (s *Storage) SetPoolLimits(maxOpenConns int, connMaxIdleTime time.Duration) {
	if maxOpenConns > 0 {
		s.DB.SetMaxOpenConns(maxOpenConns)
	}
	if connMaxIdleTime > 0 {
		s.DB.SetConnMaxIdleTime(connMaxIdleTime)
	}
}

// Close закрывает пул соединений.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// CheckDatabaseReady проверяет, что база доступна и схема применена.
func (s *Storage) CheckDatabaseReady(ctx context.Context) error {
	const op = "storage.CheckDatabaseReady"

	var exists bool
	err := s.DB.QueryRowContext(ctx, `SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    )`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return fmt.Errorf("%s: required table users missing", op)
	}
	return nil
}
