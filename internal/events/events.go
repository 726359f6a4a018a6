// Package events доставляет события жизненного цикла пользователя
// (регистрация, сброс пароля, верификация) наблюдателям.
//
// Доставка асинхронная: ошибка наблюдателя пишется в лог и никогда
// не возвращается в запрос, породивший событие.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
)

// Kind — тип события. Значение используется и как ключ маршрутизации в брокере.
type Kind string

const (
	KindRegistered     Kind = "user.registered"
	KindForgotPassword Kind = "user.forgot_password"
	KindResetPassword  Kind = "user.reset_password"
	KindRequestVerify  Kind = "user.request_verify"
	KindVerified       Kind = "user.verified"
	KindUpdated        Kind = "user.updated"
)

// Event — событие жизненного цикла пользователя.
// Token заполнен только для KindForgotPassword и KindRequestVerify.
type Event struct {
	Kind       Kind      `json:"kind"`
	UserID     int64     `json:"user_id"`
	Email      string    `json:"email"`
	Token      string    `json:"token,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Observer получает события.
type Observer interface {
	Notify(ctx context.Context, e Event) error
}

// ObserverFunc позволяет использовать функцию как Observer.
type ObserverFunc func(ctx context.Context, e Event) error

// Notify вызывает f(ctx, e).
func (f ObserverFunc) Notify(ctx context.Context, e Event) error {
	return f(ctx, e)
}

// Emitter нужен сервисам для отправки событий.
type Emitter interface {
	Emit(ctx context.Context, e Event)
}

// Dispatcher рассылает каждое событие всем наблюдателям в отдельных горутинах.
type Dispatcher struct {
	log       *slog.Logger
	observers []Observer
	timeout   time.Duration
	now       func() time.Time
	wg        sync.WaitGroup
}

// NewDispatcher создаёт рассыльщик. timeout ограничивает время одного вызова Notify.
func NewDispatcher(log *slog.Logger, timeout time.Duration, observers ...Observer) *Dispatcher {
	return &Dispatcher{
		log:       log,
		observers: observers,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Emit отправляет событие и сразу возвращает управление.
// Отмена ctx не прерывает доставку.
func (d *Dispatcher) Emit(ctx context.Context, e Event) {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = d.now().UTC()
	}
	base := context.WithoutCancel(ctx)

	for _, o := range d.observers {
		d.wg.Add(1)
		go d.deliver(base, o, e)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, o Observer, e Event) {
	const op = "events.Dispatcher.deliver"
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("observer panicked",
				slog.String("op", op),
				slog.String("kind", string(e.Kind)),
				slog.String("panic", fmt.Sprint(r)))
		}
	}()

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := o.Notify(ctx, e); err != nil {
		d.log.Error("failed to deliver user event",
			slog.String("op", op),
			slog.String("kind", string(e.Kind)),
			sl.UserID(e.UserID),
			sl.Err(err))
	}
}

// Wait ждёт завершения уже начатых доставок или отмены ctx.
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
