package create

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/trading-platform/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, batch []models.Trade) ([]models.Trade, error) {
	args := m.Called(ctx, batch)
	trades, _ := args.Get(0).([]models.Trade)
	return trades, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		wantStatusCode int
		wantBody       string
	}{
		{
			name: "batch added",
			body: `[{"id":4,"user_id":1,"currency":"ETH","side":"sell","price":"10.5","amount":"1"}]`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(b []models.Trade) bool {
					return len(b) == 1 && b[0].Currency == "ETH" && b[0].ID == 4 &&
						b[0].Price.Equal(decimal.RequireFromString("10.5"))
				})).Return([]models.Trade{{ID: 4, UserID: 1, Currency: "ETH", Side: "sell", Price: decimal.RequireFromString("10.5")}}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `"price":10.5`,
		},
		{
			name:           "currency too long",
			body:           `[{"id":4,"user_id":1,"currency":"ETHER","side":"sell","price":"1","amount":"1"}]`,
			setupMock:      func(_ *MockService) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "field currency must be at most 3 characters",
		},
		{
			name: "negative price",
			body: `[{"id":4,"user_id":1,"currency":"ETH","side":"sell","price":"-1","amount":"1"}]`,
			setupMock: func(m *MockService) {
				err := fmt.Errorf("services.TradeService.Create: trade 0: %w",
					&models.ValidationError{Field: "price", Message: "price must be greater than or equal to 0"})
				m.On("Create", mock.Anything, mock.Anything).Return(nil, err).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "price must be greater than or equal to 0",
		},
		{
			name:           "price and amount missing",
			body:           `[{"id":4,"user_id":1,"currency":"BTC","side":"buy"}]`,
			setupMock:      func(_ *MockService) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "field price is a required field",
		},
		{
			name:           "id missing",
			body:           `[{"user_id":1,"currency":"BTC","side":"buy","price":1,"amount":1}]`,
			setupMock:      func(_ *MockService) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "field id is a required field",
		},
		{
			name: "explicit zeros are accepted",
			body: `[{"id":0,"user_id":0,"currency":"BTC","side":"buy","price":0,"amount":0}]`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(b []models.Trade) bool {
					return len(b) == 1 && b[0].ID == 0 && b[0].Price.IsZero() && b[0].Amount.IsZero()
				})).Return([]models.Trade{{Currency: "BTC", Side: "buy"}}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `"price":0`,
		},
		{
			name:           "not an array",
			body:           `{"id":4}`,
			setupMock:      func(_ *MockService) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			tt.setupMock(svc)
			h := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/trades/", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}
