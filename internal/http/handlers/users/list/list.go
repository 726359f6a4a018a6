// Package list реализует HTTP-обработчик списка пользователей.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trading-platform/internal/http/response"
	"github.com/magabrotheeeer/trading-platform/internal/lib/paginate"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
	"github.com/magabrotheeeer/trading-platform/internal/models"
)

// Service описывает получение списка пользователей.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]*models.User, error)
}

// Handler обрабатывает GET /users/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP возвращает пользователей. Без limit возвращаются все.
//
// @Summary      Список пользователей
// @Tags         users
// @Produce      json
// @Param        limit   query     int  false  "Сколько вернуть"
// @Param        offset  query     int  false  "Сколько пропустить"
// @Success      200     {array}   models.User
// @Failure      400     {object}  response.ErrorResponse
// @Router       /users/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, offset, err := paginate.Params(r.URL.Query(), -1, 0)
	if err != nil {
		response.Fail(w, r, http.StatusBadRequest, err.Error())
		return
	}

	users, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		response.ServerError(w, r, err)
		return
	}

	log.Debug("users listed", slog.Int("count", len(users)))
	render.JSON(w, r, users)
}
