package resetpassword

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/trading-platform/internal/models"
	authservice "github.com/magabrotheeeer/trading-platform/internal/services/auth"
)

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) ResetPassword(ctx context.Context, token, password string) (*models.User, error) {
	args := m.Called(ctx, token, password)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func TestResetPasswordHandler(t *testing.T) {
	body := `{"token":"tok","password":"new"}`

	tests := []struct {
		name           string
		body           string
		user           *models.User
		serviceErr     error
		callService    bool
		wantStatusCode int
		wantBody       string
	}{
		{
			name: "password changed", body: body, callService: true,
			user:           &models.User{ID: 2, Email: "a@b.com"},
			wantStatusCode: http.StatusOK,
			wantBody:       `"email":"a@b.com"`,
		},
		{
			name: "bad token", body: body, callService: true,
			serviceErr:     authservice.ErrBadToken,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `"error":"RESET_PASSWORD_BAD_TOKEN"`,
		},
		{
			name: "weak password", body: body, callService: true,
			serviceErr:     authservice.ErrInvalidPassword,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `"error":"RESET_PASSWORD_INVALID_PASSWORD"`,
		},
		{
			name: "unexpected", body: body, callService: true,
			serviceErr:     errors.New("db down"),
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:           "missing token",
			body:           `{"password":"new"}`,
			wantStatusCode: http.StatusBadRequest,
			wantBody:       "field token is a required field",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			if tt.callService {
				svc.On("ResetPassword", mock.Anything, "tok", "new").Return(tt.user, tt.serviceErr).Once()
			}
			h := New(slog.New(slog.NewTextHandler(io.Discard, nil)), svc)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/reset-password", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
			svc.AssertExpectations(t)
		})
	}
}
