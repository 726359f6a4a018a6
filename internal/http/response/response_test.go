package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/trading-platform/internal/lib/validation"
	"github.com/magabrotheeeer/trading-platform/internal/models"
)

type signup struct {
	Email    string `json:"email" validate:"required,email_pattern"`
	Username string `json:"username" validate:"required,max=5,username_pattern"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var got ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	return got
}

func TestValidation_ValidatorErrors(t *testing.T) {
	err := validation.New().Struct(signup{Email: "bad@Mail.com", Username: "bad name"})
	require.Error(t, err)

	tests := []struct {
		name        string
		debug       bool
		wantDetails bool
	}{
		{name: "release mode", debug: false},
		{name: "debug mode", debug: true, wantDetails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			req = req.WithContext(WithDebug(req.Context(), tt.debug))
			rec := httptest.NewRecorder()

			Validation(rec, req, err)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			got := decode(t, rec)
			assert.Equal(t, StatusError, got.Status)
			assert.Contains(t, got.Error, models.InvalidEmailMessage)
			assert.Contains(t, got.Error, "field username must be at most 5 characters")
			if tt.wantDetails {
				require.Len(t, got.Details, 2)
				assert.Equal(t, "email", got.Details[0].Field)
				assert.Equal(t, validation.TagEmail, got.Details[0].Rule)
			} else {
				assert.Empty(t, got.Details)
			}
		})
	}
}

func TestValidation_ModelError(t *testing.T) {
	err := fmt.Errorf("storage.CreateUser: %w", &models.ValidationError{Field: "username", Message: models.InvalidUsernameMessage})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	Validation(rec, req, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	got := decode(t, rec)
	assert.Equal(t, models.InvalidUsernameMessage, got.Error)
}

func TestServerError(t *testing.T) {
	internal := errors.New("pq: connection refused")

	for _, debug := range []bool{false, true} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithDebug(req.Context(), debug))
		rec := httptest.NewRecorder()

		ServerError(rec, req, internal)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		got := decode(t, rec)
		if debug {
			assert.Equal(t, internal.Error(), got.Error)
		} else {
			assert.Equal(t, "internal server error", got.Error)
		}
	}
}

func TestOK(t *testing.T) {
	body, err := json.Marshal(OK([]int{1, 2}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":200,"data":[1,2]}`, string(body))
}

func TestIsDebug_Default(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, IsDebug(req.Context()))
}
