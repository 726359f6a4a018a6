// Package cookie выставляет и сбрасывает cookie с токеном доступа.
package cookie

import (
	"net/http"
	"strings"
	"time"
)

// Config параметры cookie для передачи токена.
type Config struct {
	Name     string
	Domain   string
	MaxAge   time.Duration
	Secure   bool
	SameSite http.SameSite
}

// ParseSameSite переводит строку из конфигурации в http.SameSite.
// Неизвестное значение трактуется как lax.
func ParseSameSite(s string) http.SameSite {
	switch strings.ToLower(s) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

// Set кладёт токен в cookie со временем жизни MaxAge.
func (c Config) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		Domain:   c.Domain,
		MaxAge:   int(c.MaxAge.Seconds()),
		Expires:  time.Now().Add(c.MaxAge).UTC(),
		Secure:   c.Secure,
		HttpOnly: true,
		SameSite: c.SameSite,
	})
}

// Clear удаляет cookie у клиента.
func (c Config) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
		Secure:   c.Secure,
		HttpOnly: true,
		SameSite: c.SameSite,
	})
}

// Token достаёт значение cookie из запроса.
func (c Config) Token(r *http.Request) (string, bool) {
	ck, err := r.Cookie(c.Name)
	if err != nil || ck.Value == "" {
		return "", false
	}
	return ck.Value, true
}
