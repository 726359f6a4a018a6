package me

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/trading-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/trading-platform/internal/models"
)

func TestMe(t *testing.T) {
	t.Run("user in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		ctx := context.WithValue(req.Context(), middlewarectx.User, &models.User{ID: 5, Username: "trader"})
		rec := httptest.NewRecorder()

		ServeHTTP(rec, req.WithContext(ctx))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"trader"`)
		assert.NotContains(t, rec.Body.String(), "hashed_password")
	})

	t.Run("no user", func(t *testing.T) {
		rec := httptest.NewRecorder()
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
