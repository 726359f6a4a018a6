// Package read реализует HTTP-обработчик получения пользователя по ID.
package read

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

// Service описывает чтение пользователя.
type Service interface {
	Get(ctx context.Context, id int64) (*models.User, error)
}

// Handler обрабатывает GET /users/{id}/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP возвращает пользователя или 404.
//
// @Summary      Пользователь по ID
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "ID пользователя"
// @Success      200  {object}  models.User
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /users/{id}/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.read"

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

	user, err := h.service.Get(r.Context(), id)
	if errors.Is(err, userservice.ErrUserNotFound) {
		response.Fail(w, r, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		log.Error("failed to read user", sl.Err(err))
		response.ServerError(w, r, err)
		return
	}

	render.JSON(w, r, user)
}
