// Package verify реализует подтверждение e-mail по токену.
package verify

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
	BadToken        = "VERIFY_USER_BAD_TOKEN"
	AlreadyVerified = "VERIFY_USER_ALREADY_VERIFIED"
)

// Request тело запроса.
type Request struct {
	Token string `json:"token" validate:"required"`
}

// Service описывает подтверждение e-mail.
type Service interface {
	Verify(ctx context.Context, token string) (*models.User, error)
}

// Handler обрабатывает POST /auth/verify.
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

// ServeHTTP подтверждает e-mail и возвращает пользователя.
//
// @Summary      Подтверждение e-mail
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      Request  true  "Токен"
// @Success      200      {object}  models.User
// @Failure      400      {object}  response.ErrorResponse
// @Router       /auth/verify [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verify"

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

	user, err := h.service.Verify(r.Context(), req.Token)
	switch {
	case errors.Is(err, authservice.ErrBadToken):
		log.Info("verify token rejected", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, BadToken)
		return
	case errors.Is(err, authservice.ErrAlreadyVerified):
		response.Fail(w, r, http.StatusBadRequest, AlreadyVerified)
		return
	case err != nil:
		log.Error("failed to verify user", sl.Err(err))
		response.ServerError(w, r, err)
		return
	}

	log.Info("user verified", sl.UserID(user.ID))
	render.JSON(w, r, user)
}
