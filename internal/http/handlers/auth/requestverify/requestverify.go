// Package requestverify реализует запрос токена подтверждения e-mail.
//
// Как и сброс пароля, всегда отвечает 202.
package requestverify

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
	authservice "github.com/magabrotheeeer/trading-platform/internal/services/auth"
)

// Request тело запроса.
type Request struct {
	Email string `json:"email" validate:"required,max=150,email_pattern"`
}

// Service описывает выпуск токена верификации.
type Service interface {
	RequestVerify(ctx context.Context, email string) error
}

// Handler обрабатывает POST /auth/request-verify-token.
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

// ServeHTTP запрашивает письмо с токеном подтверждения.
//
// @Summary      Запрос токена подтверждения
// @Tags         auth
// @Accept       json
// @Param        request  body  Request  true  "E-mail"
// @Success      202
// @Failure      400  {object}  response.ErrorResponse
// @Router       /auth/request-verify-token [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.requestverify"

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

	err := h.service.RequestVerify(r.Context(), req.Email)
	switch {
	case err == nil:
		log.Info("verification requested")
	case errors.Is(err, authservice.ErrUserNotFound),
		errors.Is(err, authservice.ErrInactiveUser),
		errors.Is(err, authservice.ErrAlreadyVerified):
		log.Debug("verification skipped", sl.Err(err))
	default:
		log.Error("failed to request verification", sl.Err(err))
		response.ServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
