package memory

import (
	"github.com/shopspring/decimal"

	"github.com/magabrotheeeer/trading-platform/internal/models"
)

// SeedTrades возвращает начальный набор сделок, с которым стартует сервис.
func SeedTrades() []models.Trade {
	return []models.Trade{
		{ID: 1, UserID: 1, Currency: "BTC", Side: "buy", Price: mustDecimal("123"), Amount: mustDecimal("2.12")},
		{ID: 2, UserID: 1, Currency: "BTC", Side: "sell", Price: mustDecimal("125"), Amount: mustDecimal("2.12")},
		{ID: 3, UserID: 2, Currency: "BTC", Side: "buy", Price: mustDecimal("117"), Amount: mustDecimal("2.12")},
	}
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
