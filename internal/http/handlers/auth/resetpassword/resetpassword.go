// Package resetpassword реализует смену пароля по токену сброса.
package resetpassword

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/trading-platform/internal/http/response"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
	"github.com/magabrotheeeer/trading-platform/internal/lib/validation"
	"github.com/magabrotheeeer/trading-platform/internal/models"
	authservice "github.com/magabrotheeeer/trading-platform/internal/services/auth"
)

// Коды ошибок.
const (
	BadToken        = "RESET_PASSWORD_BAD_TOKEN"
	InvalidPassword = "RESET_PASSWORD_INVALID_PASSWORD"
)

// Request тело запроса.
type Request struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Service описывает смену пароля.
type Service interface {
	ResetPassword(ctx context.Context, token, password string) (*models.User, error)
}

// Handler обрабатывает POST /auth/reset-password.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validation.New(),
	}
}

// ServeHTTP меняет пароль и возвращает пользователя.
//
// @Summary      Сброс пароля
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      Request  true  "Токен и новый пароль"
// @Success      200      {object}  models.User
// @Failure      400      {object}  response.ErrorResponse
// @Router       /auth/reset-password [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.resetpassword"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Validation(w, r, err)
		return
	}

	user, err := h.service.ResetPassword(r.Context(), req.Token, req.Password)
	switch {
	case errors.Is(err, authservice.ErrBadToken):
		log.Info("reset token rejected", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, BadToken)
		return
	case errors.Is(err, authservice.ErrInvalidPassword):
		log.Info("new password rejected", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, InvalidPassword)
		return
	case err != nil:
		log.Error("failed to reset password", sl.Err(err))
		response.ServerError(w, r, err)
		return
	}

	log.Info("password reset", sl.UserID(user.ID))
	render.JSON(w, r, user)
}
