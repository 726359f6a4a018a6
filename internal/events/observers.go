package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/trading-platform/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
)

// LogObserver пишет событие в лог. Токены в лог не попадают.
type LogObserver struct {
	log *slog.Logger
}

// NewLogObserver создаёт наблюдателя-логгер.
func NewLogObserver(log *slog.Logger) *LogObserver {
	return &LogObserver{log: log}
}

// Notify реализует Observer.
func (o *LogObserver) Notify(ctx context.Context, e Event) error {
	o.log.InfoContext(ctx, "user lifecycle event",
		slog.String("kind", string(e.Kind)),
		sl.UserID(e.UserID),
		slog.Bool("has_token", e.Token != ""))
	return nil
}

// MetricsObserver считает события по типам.
type MetricsObserver struct {
	total *prometheus.CounterVec
}

// NewMetricsObserver регистрирует счётчик trading_user_events_total в reg.
func NewMetricsObserver(reg prometheus.Registerer) (*MetricsObserver, error) {
	const op = "events.NewMetricsObserver"
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trading_user_events_total",
		Help: "Number of user lifecycle events by kind.",
	}, []string{"kind"})
	if err := reg.Register(total); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &MetricsObserver{total: total}, nil
}

// Notify реализует Observer.
func (o *MetricsObserver) Notify(_ context.Context, e Event) error {
	o.total.WithLabelValues(string(e.Kind)).Inc()
	return nil
}

// RabbitMQObserver публикует событие в exchange с ключом e.Kind.
// Сообщение содержит токен: его забирает сервис рассылки писем.
type RabbitMQObserver struct {
	ch       rabbitmq.Channel
	exchange string
}

// NewRabbitMQObserver создаёт наблюдателя поверх открытого канала.
func NewRabbitMQObserver(ch rabbitmq.Channel, exchange string) *RabbitMQObserver {
	return &RabbitMQObserver{ch: ch, exchange: exchange}
}

// Notify реализует Observer.
func (o *RabbitMQObserver) Notify(ctx context.Context, e Event) error {
	const op = "events.RabbitMQObserver.Notify"
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := rabbitmq.PublishMessage(o.ch, o.exchange, string(e.Kind), e); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RedisPublisher — часть redis-клиента, нужная для PUBLISH.
type RedisPublisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

// RedisObserver публикует событие в канал pub/sub без токена.
type RedisObserver struct {
	client  RedisPublisher
	channel string
}

// NewRedisObserver создаёт наблюдателя поверх клиента redis.
func NewRedisObserver(client RedisPublisher, channel string) *RedisObserver {
	return &RedisObserver{client: client, channel: channel}
}

// Notify реализует Observer.
func (o *RedisObserver) Notify(ctx context.Context, e Event) error {
	const op = "events.RedisObserver.Notify"
	e.Token = ""
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := o.client.Publish(ctx, o.channel, payload).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
