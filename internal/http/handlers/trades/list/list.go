// Package list реализует HTTP-обработчик постраничного списка сделок.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trading-platform/internal/http/response"
	"github.com/magabrotheeeer/trading-platform/internal/lib/paginate"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
	"github.com/magabrotheeeer/trading-platform/internal/models"
)

// Значения по умолчанию для окна выборки.
const (
	DefaultLimit  = 3
	DefaultOffset = 0
)

// Service описывает чтение сделок.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]models.Trade, error)
}

// Handler обрабатывает GET /trades/.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создаёт Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP возвращает сделки из окна [offset, offset+limit).
//
// @Summary      Список сделок
// @Tags         trades
// @Produce      json
// @Param        limit   query     int  false  "Размер окна (по умолчанию 3)"
// @Param        offset  query     int  false  "Смещение (по умолчанию 0)"
// @Success      200     {array}   models.Trade
// @Failure      400     {object}  response.ErrorResponse
// @Router       /trades/ [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.trades.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, offset, err := paginate.Params(r.URL.Query(), DefaultLimit, DefaultOffset)
	if err != nil {
		response.Fail(w, r, http.StatusBadRequest, err.Error())
		return
	}

	trades, err := h.service.List(r.Context(), limit, offset)
	if errors.Is(err, paginate.ErrInvalidParam) {
		response.Fail(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		log.Error("failed to list trades", sl.Err(err))
		response.ServerError(w, r, err)
		return
	}

	render.JSON(w, r, trades)
}
