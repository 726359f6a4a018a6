package register

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/trading-platform/internal/models"
	authservice "github.com/magabrotheeeer/trading-platform/internal/services/auth"
)

// Мок сервиса регистрации
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Register(ctx context.Context, req models.UserCreate) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestRegisterHandler_ServeHTTP(t *testing.T) {
	valid := models.UserCreate{Email: "a@b.com", Username: "abc", Password: "x"}

	tests := []struct {
		name           string
		requestBody    any
		setupMock      func(m *ServiceMock)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "valid registration",
			requestBody: valid,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, valid).
					Return(&models.User{ID: 1, Email: "a@b.com", Username: "abc", RoleID: 1, IsActive: true, HashedPassword: "hash"}, nil).Once()
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:        "role and flags in body are ignored",
			requestBody: `{"email":"a@b.com","username":"abc","password":"x","role_id":4,"is_superuser":true,"is_active":false,"is_verified":true}`,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, valid).
					Return(&models.User{ID: 1, Email: "a@b.com", Username: "abc", RoleID: models.DefaultRoleID, IsActive: true, HashedPassword: "hash"}, nil).Once()
			},
			wantStatusCode: http.StatusCreated,
		},
		{
			name:           "invalid json body",
			requestBody:    "not a json",
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "invalid request body",
		},
		{
			name:           "missing password",
			requestBody:    models.UserCreate{Email: "a@b.com", Username: "abc"},
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "field password is a required field",
		},
		{
			name:           "email with uppercase domain",
			requestBody:    models.UserCreate{Email: "a@B.com", Username: "abc", Password: "x"},
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      models.InvalidEmailMessage,
		},
		{
			name:           "username with space",
			requestBody:    models.UserCreate{Email: "a@b.com", Username: "a b", Password: "x"},
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantError:      models.InvalidUsernameMessage,
		},
		{
			name:        "duplicate email",
			requestBody: valid,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, valid).
					Return(nil, fmt.Errorf("services.Manager.Register: %w", authservice.ErrUserAlreadyExists)).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "user already exists",
		},
		{
			name:        "rejected at persistence",
			requestBody: valid,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, valid).
					Return(nil, &models.ValidationError{Field: "username", Message: models.InvalidUsernameMessage}).Once()
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      models.InvalidUsernameMessage,
		},
		{
			name:        "storage failure",
			requestBody: valid,
			setupMock: func(m *ServiceMock) {
				m.On("Register", mock.Anything, valid).Return(nil, errors.New("db down")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(newNoopLogger(), svc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				var err error
				bodyBytes, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(bodyBytes))
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))

			if tt.wantError != "" {
				assert.Equal(t, "Error", got["status"])
				assert.Equal(t, tt.wantError, got["error"])
			} else {
				assert.Equal(t, "a@b.com", got["email"])
				assert.Equal(t, float64(models.DefaultRoleID), got["role_id"])
				assert.NotContains(t, got, "hashed_password")
				assert.NotContains(t, got, "HashedPassword")
			}
			svc.AssertExpectations(t)
		})
	}
}
