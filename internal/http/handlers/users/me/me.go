// Package me реализует HTTP-обработчик GET /users/me.
package me

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trading-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/trading-platform/internal/http/response"
)

// ServeHTTP возвращает текущего пользователя. Требует CookieAuth.
//
// @Summary      Текущий пользователь
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  response.ErrorResponse
// @Router       /users/me [get]
func ServeHTTP(w http.ResponseWriter, r *http.Request) {
	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		response.Fail(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}
	render.JSON(w, r, user)
}
