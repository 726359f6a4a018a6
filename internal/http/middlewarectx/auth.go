// Package middlewarectx содержит HTTP middleware: аутентификацию по cookie,
// ограничение частоты запросов, метрики и флаг режима отладки.
//
// CookieAuth проверяет токен доступа из cookie и кладёт пользователя
// в контекст запроса. Без действительного токена отвечает 401.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/trading-platform/internal/http/response"
	"github.com/magabrotheeeer/trading-platform/internal/lib/cookie"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
	"github.com/magabrotheeeer/trading-platform/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ для текущего пользователя в контексте.
const User Key = "user"

// Authenticator находит активного пользователя по токену доступа.
type Authenticator interface {
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

// CookieAuth возвращает middleware, который требует действительный токен в cookie.
func CookieAuth(auth Authenticator, ck cookie.Config, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.CookieAuth"
			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token, ok := ck.Token(r)
			if !ok {
				log.Debug("auth cookie missing")
				response.Fail(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}

			user, err := auth.CurrentUser(r.Context(), token)
			if err != nil {
				log.Info("invalid or expired token", sl.Err(err))
				response.Fail(w, r, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext возвращает пользователя, положенного CookieAuth.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(User).(*models.User)
	return user, ok && user != nil
}
