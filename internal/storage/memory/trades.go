// Package memory хранит сделки в памяти процесса. Данные живут,
// пока жив процесс, и не попадают в реляционное хранилище.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/magabrotheeeer/trading-platform/internal/lib/paginate"
	"github.com/magabrotheeeer/trading-platform/internal/models"
)

// TradeStore — потокобезопасный список сделок в порядке добавления.
type TradeStore struct {
	mu     sync.RWMutex
	trades []models.Trade
}

// NewTradeStore создаёт хранилище, заполненное начальными сделками.
func NewTradeStore(seed ...models.Trade) *TradeStore {
	trades := make([]models.Trade, len(seed))
	copy(trades, seed)
	return &TradeStore{trades: trades}
}

// List возвращает копию окна [offset, offset+limit).
func (s *TradeStore) List(ctx context.Context, limit, offset int) ([]models.Trade, error) {
	const op = "memory.TradeStore.List"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return paginate.Slice(s.trades, limit, offset), nil
}

// Append добавляет пачку сделок целиком, под одной блокировкой,
// так что параллельные пачки не перемешиваются.
func (s *TradeStore) Append(ctx context.Context, batch []models.Trade) ([]models.Trade, error) {
	const op = "memory.TradeStore.Append"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	added := make([]models.Trade, len(batch))
	copy(added, batch)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades = append(s.trades, added...)
	return added, nil
}

// Len возвращает количество сделок.
func (s *TradeStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trades)
}
