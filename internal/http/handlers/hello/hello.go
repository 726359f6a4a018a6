// Package hello реализует корневой обработчик GET /.
package hello

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trading-platform/internal/http/response"
)

// Greeting текст приветствия.
const Greeting = "Hello, Human!"

// ServeHTTP отвечает приветствием.
//
// @Summary      Приветствие
// @Tags         root
// @Produce      json
// @Success      200  {object}  response.Message
// @Router       / [get]
func ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, response.Message{Message: Greeting})
}
