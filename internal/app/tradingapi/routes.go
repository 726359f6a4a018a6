package tradingapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/trading-platform/internal/http/handlers/auth/forgotpassword"
	"github.com/magabrotheeeer/trading-platform/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/trading-platform/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/trading-platform/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/trading-platform/internal/http/handlers/auth/requestverify"
	"github.com/magabrotheeeer/trading-platform/internal/http/handlers/auth/resetpassword"
	"github.com/magabrotheeeer/trading-platform/internal/http/handlers/auth/verify"
	"github.com/magabrotheeeer/trading-platform/internal/http/handlers/hello"
	roleslist "github.com/magabrotheeeer/trading-platform/internal/http/handlers/roles/list"
	tradescreate "github.com/magabrotheeeer/trading-platform/internal/http/handlers/trades/create"
	tradeslist "github.com/magabrotheeeer/trading-platform/internal/http/handlers/trades/list"
	userslist "github.com/magabrotheeeer/trading-platform/internal/http/handlers/users/list"
	"github.com/magabrotheeeer/trading-platform/internal/http/handlers/users/me"
	"github.com/magabrotheeeer/trading-platform/internal/http/handlers/users/read"
	"github.com/magabrotheeeer/trading-platform/internal/http/handlers/users/rename"
	"github.com/magabrotheeeer/trading-platform/internal/http/handlers/users/updateme"
	"github.com/magabrotheeeer/trading-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/trading-platform/internal/http/response"
	"github.com/magabrotheeeer/trading-platform/internal/lib/cookie"
)

// AuthService описывает всё, что HTTP-слой требует от менеджера пользователей.
type AuthService interface {
	register.Service
	login.Service
	forgotpassword.Service
	resetpassword.Service
	requestverify.Service
	verify.Service
	updateme.Service
	middlewarectx.Authenticator
}

// UserService читает и переименовывает пользователей и отдаёт роли.
type UserService interface {
	userslist.Service
	read.Service
	rename.Service
	roleslist.Service
}

// TradeService читает и добавляет сделки.
type TradeService interface {
	tradeslist.Service
	tradescreate.Service
}

// Deps зависимости маршрутов.
type Deps struct {
	Auth     AuthService
	Users    UserService
	Trades   TradeService
	Cookie   cookie.Config
	Metrics  *middlewarectx.Metrics
	Gatherer prometheus.Gatherer
	Debug    bool

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.Debug(deps.Debug),
	)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
	}

	cookieAuth := middlewarectx.CookieAuth(deps.Auth, deps.Cookie, logger)

	r.Get("/", hello.ServeHTTP)

	r.Route("/auth", func(r chi.Router) {
		r.Use(middlewarectx.RateLimitMiddleware(logger, deps.AuthRateLimitRPS, deps.AuthRateLimitBurst))

		r.Post("/jwt/login", login.New(logger, deps.Auth, deps.Cookie).ServeHTTP)
		r.With(cookieAuth).Post("/jwt/logout", logout.New(logger, deps.Cookie).ServeHTTP)
		r.Post("/register", register.New(logger, deps.Auth).ServeHTTP)
		r.Post("/forgot-password", forgotpassword.New(logger, deps.Auth).ServeHTTP)
		r.Post("/reset-password", resetpassword.New(logger, deps.Auth).ServeHTTP)
		r.Post("/request-verify-token", requestverify.New(logger, deps.Auth).ServeHTTP)
		r.Post("/verify", verify.New(logger, deps.Auth).ServeHTTP)
	})

	r.Route("/users", func(r chi.Router) {
		// Группа с аутентификацией по cookie
		r.Group(func(r chi.Router) {
			r.Use(cookieAuth)
			r.Get("/me", me.ServeHTTP)
			r.Patch("/me", updateme.New(logger, deps.Auth).ServeHTTP)
		})

		r.Get("/", userslist.New(logger, deps.Users).ServeHTTP)
		r.Get("/{id}/", read.New(logger, deps.Users).ServeHTTP)
		r.Post("/{id}/", rename.New(logger, deps.Users).ServeHTTP)
	})

	r.Get("/roles/", roleslist.New(logger, deps.Users).ServeHTTP)

	r.Route("/trades", func(r chi.Router) {
		r.Get("/", tradeslist.New(logger, deps.Trades).ServeHTTP)
		r.Post("/", tradescreate.New(logger, deps.Trades).ServeHTTP)
	})

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.Fail(w, r, http.StatusNotFound, "Not Found")
	})
}
