// Package services реализует операции над сделками: постраничный
// список и добавление пачки.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/trading-platform/internal/lib/paginate"
	"github.com/magabrotheeeer/trading-platform/internal/models"
)

// TradeStore определяет хранилище сделок.
type TradeStore interface {
	// List возвращает окно [offset, offset+limit).
	List(ctx context.Context, limit, offset int) ([]models.Trade, error)
	// Append добавляет пачку сделок целиком.
	Append(ctx context.Context, batch []models.Trade) ([]models.Trade, error)
}

// TradeService реализует бизнес-логику работы со сделками.
type TradeService struct {
	store TradeStore
	log   *slog.Logger
}

// NewTradeService создаёт новый экземпляр TradeService.
func NewTradeService(store TradeStore, log *slog.Logger) *TradeService {
	return &TradeService{
		store: store,
		log:   log,
	}
}

// List возвращает сделки из окна [offset, offset+limit).
// Отрицательные значения отклоняются с paginate.ErrInvalidParam.
func (s *TradeService) List(ctx context.Context, limit, offset int) ([]models.Trade, error) {
	const op = "services.TradeService.List"
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("%s: %w: limit and offset must be non-negative", op, paginate.ErrInvalidParam)
	}
	trades, err := s.store.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return trades, nil
}

// Create проверяет все сделки и добавляет их одной пачкой.
// Если хотя бы одна сделка невалидна, не добавляется ни одна.
func (s *TradeService) Create(ctx context.Context, batch []models.Trade) ([]models.Trade, error) {
	const op = "services.TradeService.Create"
	for i, t := range batch {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("%s: trade %d: %w", op, i, err)
		}
	}

	added, err := s.store.Append(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Debug("trades added", slog.Int("count", len(added)))
	return added, nil
}
