// Package create реализует HTTP-обработчик добавления сделок.
package create

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
)

// Service описывает добавление сделок.
type Service interface {
	Create(ctx context.Context, batch []models.Trade) ([]models.Trade, error)
}

// Handler обрабатывает POST /trades/.
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

// ServeHTTP добавляет пачку сделок и возвращает её в конверте.
// Пачка принимается целиком или отклоняется целиком.
//
// @Summary      Добавление сделок
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        request  body      []models.TradeCreate  true  "Сделки"
// @Success      200      {object}  response.Echo
// @Failure      400      {object}  response.ErrorResponse
// @Router       /trades/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.trades.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req []models.TradeCreate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	batch := make([]models.Trade, 0, len(req))
	for i := range req {
		if err := h.validate.Struct(req[i]); err != nil {
			log.Info("validation failed", slog.Int("index", i), sl.Err(err))
			response.Validation(w, r, err)
			return
		}
		batch = append(batch, req[i].Trade())
	}

	added, err := h.service.Create(r.Context(), batch)
	if errors.Is(err, models.ErrValidation) {
		log.Info("trade rejected", sl.Err(err))
		response.Validation(w, r, err)
		return
	}
	if err != nil {
		log.Error("failed to add trades", sl.Err(err))
		response.ServerError(w, r, err)
		return
	}

	log.Info("trades added", slog.Int("count", len(added)))
	render.JSON(w, r, response.OK(added))
}
