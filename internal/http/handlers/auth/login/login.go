// Package login реализует вход по e-mail и паролю с выдачей токена в cookie.
//
// Тело запроса: форма OAuth2 password flow: поле username содержит e-mail.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/trading-platform/internal/http/response"
	"github.com/magabrotheeeer/trading-platform/internal/lib/cookie"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
	"github.com/magabrotheeeer/trading-platform/internal/models"
	authservice "github.com/magabrotheeeer/trading-platform/internal/services/auth"
)

// BadCredentials код ошибки неверного входа.
const BadCredentials = "LOGIN_BAD_CREDENTIALS"

// Service описывает вход пользователя.
type Service interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// Handler обрабатывает POST /auth/jwt/login.
type Handler struct {
	log     *slog.Logger
	service Service
	cookie  cookie.Config
}

// New создаёт Handler.
func New(log *slog.Logger, service Service, ck cookie.Config) *Handler {
	return &Handler{
		log:     log,
		service: service,
		cookie:  ck,
	}
}

// ServeHTTP проверяет учётные данные и выставляет cookie с токеном доступа.
//
// @Summary      Вход
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        username  formData  string  true  "E-mail"
// @Param        password  formData  string  true  "Пароль"
// @Success      204
// @Failure      400  {object}  response.ErrorResponse
// @Router       /auth/jwt/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	email, password := r.PostForm.Get("username"), r.PostForm.Get("password")
	if email == "" || password == "" {
		response.Fail(w, r, http.StatusBadRequest, "fields username and password are required")
		return
	}

	token, user, err := h.service.Login(r.Context(), email, password)
	if errors.Is(err, authservice.ErrBadCredentials) {
		log.Info("login rejected")
		response.Fail(w, r, http.StatusBadRequest, BadCredentials)
		return
	}
	if err != nil {
		log.Error("login failed", sl.Err(err))
		response.ServerError(w, r, err)
		return
	}

	log.Info("user logged in", sl.UserID(user.ID))
	h.cookie.Set(w, token)
	w.WriteHeader(http.StatusNoContent)
}
