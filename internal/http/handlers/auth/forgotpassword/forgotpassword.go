// Package forgotpassword реализует запрос на сброс пароля.
//
// Ответ всегда 202, чтобы по нему нельзя было узнать, зарегистрирован ли e-mail.
package forgotpassword

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

// Service описывает выпуск токена сброса.
type Service interface {
	ForgotPassword(ctx context.Context, email string) error
}

// Handler обрабатывает POST /auth/forgot-password.
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

// ServeHTTP запускает сброс пароля.
//
// @Summary      Запрос сброса пароля
// @Tags         auth
// @Accept       json
// @Param        request  body  Request  true  "E-mail"
// @Success      202
// @Failure      400  {object}  response.ErrorResponse
// @Router       /auth/forgot-password [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.forgotpassword"

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

	err := h.service.ForgotPassword(r.Context(), req.Email)
	switch {
	case err == nil:
		log.Info("password reset requested")
	case errors.Is(err, authservice.ErrUserNotFound), errors.Is(err, authservice.ErrInactiveUser):
		log.Debug("password reset skipped", sl.Err(err))
	default:
		log.Error("failed to request password reset", sl.Err(err))
		response.ServerError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
