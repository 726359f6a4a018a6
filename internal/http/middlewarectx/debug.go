package middlewarectx

import (
	"net/http"

	"github.com/magabrotheeeer/trading-platform/internal/http/response"
)

// Debug помечает каждый запрос флагом режима отладки.
// В режиме отладки ответы об ошибках содержат подробности.
func Debug(debug bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(response.WithDebug(r.Context(), debug)))
		})
	}
}
