// Package rename реализует HTTP-обработчик смены username.
package rename

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trading-platform/internal/http/response"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
	"github.com/magabrotheeeer/trading-platform/internal/models"
	userservice "github.com/magabrotheeeer/trading-platform/internal/services/users"
)

// Service описывает смену username.
type Service interface {
	Rename(ctx context.Context, id int64, newUsername string) (*models.User, error)
}

// Handler обрабатывает POST /users/{id}/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP меняет username пользователя. Новое значение берётся из
// параметра new_username (query или форма).
//
// @Summary      Смена username
// @Tags         users
// @Produce      json
// @Param        id            path      int     true  "ID пользователя"
// @Param        new_username  query     string  true  "Новый username"
// @Success      200           {object}  response.Echo
// @Failure      400           {object}  response.ErrorResponse
// @Failure      404           {object}  response.ErrorResponse
// @Router       /users/{id}/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.rename"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Info("failed to decode id from url", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "failed to decode id from url")
		return
	}

	newUsername := r.FormValue("new_username")
	if newUsername == "" {
		response.Fail(w, r, http.StatusBadRequest, "field new_username is a required field")
		return
	}

	user, err := h.service.Rename(r.Context(), id, newUsername)
	switch {
	case errors.Is(err, userservice.ErrUserNotFound):
		response.Fail(w, r, http.StatusNotFound, "user not found")
		return
	case errors.Is(err, userservice.ErrUsernameTaken):
		log.Info("username taken", slog.String("username", newUsername))
		response.Fail(w, r, http.StatusBadRequest, "username already taken")
		return
	case errors.Is(err, models.ErrValidation):
		log.Info("username rejected", sl.Err(err))
		response.Validation(w, r, err)
		return
	case err != nil:
		log.Error("failed to rename user", sl.Err(err))
		response.ServerError(w, r, err)
		return
	}

	log.Info("user renamed", sl.UserID(user.ID))
	render.JSON(w, r, response.OK(user))
}
