// Package updateme реализует HTTP-обработчик PATCH /users/me.
package updateme

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/trading-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/trading-platform/internal/http/response"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
	"github.com/magabrotheeeer/trading-platform/internal/lib/validation"
	"github.com/magabrotheeeer/trading-platform/internal/models"
	authservice "github.com/magabrotheeeer/trading-platform/internal/services/auth"
)

// Service описывает обновление профиля.
type Service interface {
	UpdateProfile(ctx context.Context, userID int64, upd models.UserUpdate) (*models.User, error)
}

// Handler обрабатывает PATCH /users/me.
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

// ServeHTTP частично обновляет профиль текущего пользователя.
//
// @Summary      Обновление профиля
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      models.UserUpdate  true  "Изменяемые поля"
// @Success      200      {object}  models.User
// @Failure      400      {object}  response.ErrorResponse
// @Failure      401      {object}  response.ErrorResponse
// @Router       /users/me [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.updateme"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	current, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		response.Fail(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var upd models.UserUpdate
	if err := render.DecodeJSON(r.Body, &upd); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(upd); err != nil {
		log.Info("validation failed", sl.Err(err))
		response.Validation(w, r, err)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), current.ID, upd)
	switch {
	case errors.Is(err, authservice.ErrUserAlreadyExists):
		response.Fail(w, r, http.StatusBadRequest, "user already exists")
		return
	case errors.Is(err, authservice.ErrInvalidPassword):
		log.Info("password rejected", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "UPDATE_USER_INVALID_PASSWORD")
		return
	case errors.Is(err, authservice.ErrUserNotFound):
		response.Fail(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	case errors.Is(err, models.ErrValidation):
		log.Info("profile rejected at persistence", sl.Err(err))
		response.Validation(w, r, err)
		return
	case err != nil:
		log.Error("failed to update profile", sl.Err(err))
		response.ServerError(w, r, err)
		return
	}

	log.Info("profile updated", sl.UserID(user.ID))
	render.JSON(w, r, user)
}
