package events

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Notify(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func TestDispatcher_DeliversToAllObservers(t *testing.T) {
	first, second := &recorder{}, &recorder{}
	d := NewDispatcher(discardLogger(), time.Second, first, second)

	d.Emit(context.Background(), Event{Kind: KindRegistered, UserID: 7, Email: "a@mail.com"})
	require.NoError(t, d.Wait(context.Background()))

	for _, r := range []*recorder{first, second} {
		got := r.all()
		require.Len(t, got, 1)
		assert.Equal(t, KindRegistered, got[0].Kind)
		assert.Equal(t, int64(7), got[0].UserID)
		assert.False(t, got[0].OccurredAt.IsZero())
	}
}

func TestDispatcher_FailingObserverDoesNotAffectOthers(t *testing.T) {
	ok := &recorder{}
	failing := ObserverFunc(func(context.Context, Event) error {
		return errors.New("broker down")
	})
	panicking := ObserverFunc(func(context.Context, Event) error {
		panic("boom")
	})
	d := NewDispatcher(discardLogger(), time.Second, failing, panicking, ok)

	assert.NotPanics(t, func() {
		d.Emit(context.Background(), Event{Kind: KindVerified, UserID: 1})
		require.NoError(t, d.Wait(context.Background()))
	})
	assert.Len(t, ok.all(), 1)
}

func TestDispatcher_EmitDoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	var delivered atomic.Bool
	slow := ObserverFunc(func(context.Context, Event) error {
		<-release
		delivered.Store(true)
		return nil
	})
	d := NewDispatcher(discardLogger(), 0, slow)

	start := time.Now()
	d.Emit(context.Background(), Event{Kind: KindRegistered})
	assert.Less(t, time.Since(start), 100*time.Millisecond)
	assert.False(t, delivered.Load())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Wait(ctx), context.DeadlineExceeded)

	close(release)
	require.NoError(t, d.Wait(context.Background()))
	assert.True(t, delivered.Load())
}

func TestDispatcher_CanceledRequestContext(t *testing.T) {
	var gotErr atomic.Value
	obs := ObserverFunc(func(ctx context.Context, _ Event) error {
		gotErr.Store(ctx.Err() == nil)
		return nil
	})
	d := NewDispatcher(discardLogger(), time.Second, obs)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Emit(ctx, Event{Kind: KindUpdated})
	require.NoError(t, d.Wait(context.Background()))

	assert.Equal(t, true, gotErr.Load())
}

func TestDispatcher_KeepsOccurredAt(t *testing.T) {
	r := &recorder{}
	d := NewDispatcher(discardLogger(), time.Second, r)
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	d.Emit(context.Background(), Event{Kind: KindResetPassword, OccurredAt: at})
	require.NoError(t, d.Wait(context.Background()))

	require.Len(t, r.all(), 1)
	assert.Equal(t, at, r.all()[0].OccurredAt)
}
