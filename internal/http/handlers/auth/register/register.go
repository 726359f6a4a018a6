// Package register реализует HTTP-обработчик регистрации пользователя.
package register

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

// Service описывает регистрацию пользователя.
type Service interface {
	Register(ctx context.Context, req models.UserCreate) (*models.User, error)
}

// Handler обрабатывает POST /auth/register.
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

// ServeHTTP регистрирует пользователя и возвращает его открытые поля.
//
// @Summary      Регистрация
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.UserCreate  true  "Данные пользователя"
// @Success      201      {object}  models.User
// @Failure      400      {object}  response.ErrorResponse
// @Failure      500      {object}  response.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UserCreate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		response.Validation(w, r, err)
		return
	}

	user, err := h.service.Register(r.Context(), req)
	switch {
	case errors.Is(err, authservice.ErrUserAlreadyExists):
		log.Info("user already exists")
		response.Fail(w, r, http.StatusBadRequest, "user already exists")
		return
	case errors.Is(err, authservice.ErrInvalidPassword):
		log.Info("password rejected", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "REGISTER_INVALID_PASSWORD")
		return
	case errors.Is(err, models.ErrValidation):
		log.Info("user rejected at persistence", sl.Err(err))
		response.Validation(w, r, err)
		return
	case err != nil:
		log.Error("registration failed", sl.Err(err))
		response.ServerError(w, r, err)
		return
	}

	log.Info("user registered", sl.UserID(user.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, user)
}
