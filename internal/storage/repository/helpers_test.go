package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/trading-platform/internal/lib/password"
	"github.com/magabrotheeeer/trading-platform/internal/migrations"
	"github.com/magabrotheeeer/trading-platform/internal/models"
)

// setupTestStorage поднимает PostgreSQL в контейнере и применяет миграции.
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test requires docker")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(ctx, connStr)
	require.NoError(t, err)
	require.NoError(t, migrations.Run(storage.DB))

	t.Cleanup(func() {
		_ = storage.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})
	return storage
}

// TestDataFactory создаёт тестовые записи.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создаёт фабрику поверх хранилища.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// NewUser возвращает валидного пользователя с ролью по умолчанию.
func (f *TestDataFactory) NewUser(t *testing.T, email, username string) models.User {
	t.Helper()
	hash, err := password.GetHash("secret-password")
	require.NoError(t, err)
	return models.User{
		Email:          email,
		HashedPassword: hash,
		IsActive:       true,
		RoleID:         models.DefaultRoleID,
		Username:       username,
	}
}

// CreateUser сохраняет пользователя и возвращает сохранённую запись.
func (f *TestDataFactory) CreateUser(t *testing.T, email, username string) *models.User {
	t.Helper()
	u, err := f.storage.CreateUser(context.Background(), f.NewUser(t, email, username))
	require.NoError(t, err)
	return u
}
