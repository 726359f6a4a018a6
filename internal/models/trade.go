package models

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MaxLenCurrency максимальная длина кода валюты.
const MaxLenCurrency = 3

func init() {
	// Цена и объём отдаются в JSON числами, как и принимаются.
	decimal.MarshalJSONWithoutQuotes = true
}

// Trade — сделка пользователя. Хранится только в памяти процесса.
// UserID не проверяется на существование пользователя.
type Trade struct {
	ID       int64           `json:"id"`
	UserID   int64           `json:"user_id"`
	Currency string          `json:"currency"`
	Side     string          `json:"side"`
	Price    decimal.Decimal `json:"price"`
	Amount   decimal.Decimal `json:"amount"`
}

// TradeCreate — элемент тела POST /trades/.
// Числовые поля — указатели: отсутствующее поле отличается от явного нуля.
type TradeCreate struct {
	ID       *int64           `json:"id" validate:"required"`
	UserID   *int64           `json:"user_id" validate:"required"`
	Currency string           `json:"currency" validate:"required,max=3"`
	Side     string           `json:"side" validate:"required"`
	Price    *decimal.Decimal `json:"price" validate:"required"`
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
}

// Trade переводит прошедший валидацию запрос в сделку.
func (t TradeCreate) Trade() Trade {
	tr := Trade{Currency: t.Currency, Side: t.Side}
	if t.ID != nil {
		tr.ID = *t.ID
	}
	if t.UserID != nil {
		tr.UserID = *t.UserID
	}
	if t.Price != nil {
		tr.Price = *t.Price
	}
	if t.Amount != nil {
		tr.Amount = *t.Amount
	}
	return tr
}

// Validate проверяет сделку: валюта не длиннее трёх символов, цена неотрицательна.
func (t Trade) Validate() error {
	if utf8.RuneCountInString(t.Currency) > MaxLenCurrency {
		return invalid("currency", fmt.Sprintf("currency must be at most %d characters", MaxLenCurrency))
	}
	if t.Price.IsNegative() {
		return invalid("price", "price must be greater than or equal to 0")
	}
	return nil
}
