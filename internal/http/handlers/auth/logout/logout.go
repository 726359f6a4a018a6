// Package logout реализует выход: cookie с токеном сбрасывается.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/trading-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/trading-platform/internal/lib/cookie"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
)

// Handler обрабатывает POST /auth/jwt/logout. Ставится за CookieAuth.
type Handler struct {
	log    *slog.Logger
	cookie cookie.Config
}

// New создаёт Handler.
func New(log *slog.Logger, ck cookie.Config) *Handler {
	return &Handler{log: log, cookie: ck}
}

// ServeHTTP сбрасывает cookie.
//
// @Summary      Выход
// @Tags         auth
// @Success      204
// @Failure      401  {object}  response.ErrorResponse
// @Router       /auth/jwt/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	if user, ok := middlewarectx.UserFromContext(r.Context()); ok {
		log.Info("user logged out", sl.UserID(user.ID))
	}

	h.cookie.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}
