package events

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/trading-platform/internal/config"
)

// NewRedisClient подключается к Redis и проверяет соединение.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	const op = "events.NewRedisClient"
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return client, nil
}
