// Package list реализует HTTP-обработчик списка ролей.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trading-platform/internal/http/response"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
	"github.com/magabrotheeeer/trading-platform/internal/models"
)

// Service описывает чтение ролей.
type Service interface {
	Roles(ctx context.Context) ([]*models.Role, error)
}

// Handler обрабатывает GET /roles/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP возвращает все роли.
//
// @Summary      Список ролей
// @Tags         roles
// @Produce      json
// @Success      200  {array}   models.Role
// @Router       /roles/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.roles.list"

	roles, err := h.service.Roles(r.Context())
	if err != nil {
		h.log.Error("failed to list roles",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
		response.ServerError(w, r, err)
		return
	}

	render.JSON(w, r, roles)
}
