package middlewarectx_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/trading-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/trading-platform/internal/http/response"
	"github.com/magabrotheeeer/trading-platform/internal/lib/cookie"
	"github.com/magabrotheeeer/trading-platform/internal/models"
)

type AuthenticatorMock struct {
	mock.Mock
}

func (m *AuthenticatorMock) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func testCookie() cookie.Config {
	return cookie.Config{Name: "auth_cookie", MaxAge: time.Hour, SameSite: http.SameSiteLaxMode}
}

func TestCookieAuth(t *testing.T) {
	user := &models.User{ID: 42, Email: "a@mail.com"}

	tests := []struct {
		name           string
		cookieValue    string
		setupMock      func(m *AuthenticatorMock)
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing cookie",
			setupMock:      func(_ *AuthenticatorMock) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:        "invalid token",
			cookieValue: "bad",
			setupMock: func(m *AuthenticatorMock) {
				m.On("CurrentUser", mock.Anything, "bad").Return(nil, errors.New("invalid token")).Once()
			},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:        "valid token",
			cookieValue: "good",
			setupMock: func(m *AuthenticatorMock) {
				m.On("CurrentUser", mock.Anything, "good").Return(user, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthenticatorMock)
			tt.setupMock(authMock)

			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got, ok := middlewarectx.UserFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, user, got)
				w.WriteHeader(http.StatusOK)
			})
			h := middlewarectx.CookieAuth(authMock, testCookie(), newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			if tt.cookieValue != "" {
				req.AddCookie(&http.Cookie{Name: "auth_cookie", Value: tt.cookieValue})
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
			authMock.AssertExpectations(t)
		})
	}
}

func TestUserFromContext_Empty(t *testing.T) {
	_, ok := middlewarectx.UserFromContext(context.Background())
	assert.False(t, ok)
}

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := middlewarectx.RateLimitMiddleware(newNoopLogger(), 0.001, 2)(next)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/jwt/login", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestDebug(t *testing.T) {
	for _, debug := range []bool{true, false} {
		var got bool
		next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = response.IsDebug(r.Context())
		})
		middlewarectx.Debug(debug)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, debug, got)
	}
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := middlewarectx.NewMetrics(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/users/{id}/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/users/1/", "/users/2/"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	var total *dto.MetricFamily
	for _, f := range families {
		if f.GetName() == "trading_http_requests_total" {
			total = f
		}
	}
	require.NotNil(t, total)
	require.Len(t, total.GetMetric(), 1)

	metric := total.GetMetric()[0]
	labels := map[string]string{}
	for _, l := range metric.GetLabel() {
		labels[l.GetName()] = l.GetValue()
	}
	assert.Equal(t, map[string]string{"method": "GET", "route": "/users/{id}/", "status": "404"}, labels)
	assert.Equal(t, 2.0, metric.GetCounter().GetValue())

	_, err = middlewarectx.NewMetrics(reg)
	assert.Error(t, err)
}
