// Package tradingapi собирает HTTP API торговой платформы: хранилища,
// менеджер пользователей, рассылку событий, маршруты и gRPC health-сервис.
package tradingapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/magabrotheeeer/trading-platform/internal/config"
	"github.com/magabrotheeeer/trading-platform/internal/events"
	"github.com/magabrotheeeer/trading-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/trading-platform/internal/lib/cookie"
	"github.com/magabrotheeeer/trading-platform/internal/lib/jwt"
	"github.com/magabrotheeeer/trading-platform/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
	"github.com/magabrotheeeer/trading-platform/internal/lib/smtp"
	"github.com/magabrotheeeer/trading-platform/internal/migrations"
	authservice "github.com/magabrotheeeer/trading-platform/internal/services/auth"
	tradeservice "github.com/magabrotheeeer/trading-platform/internal/services/trades"
	userservice "github.com/magabrotheeeer/trading-platform/internal/services/users"
	"github.com/magabrotheeeer/trading-platform/internal/storage/memory"
	"github.com/magabrotheeeer/trading-platform/internal/storage/repository"
)

const (
	eventTimeout        = 5 * time.Second
	healthCheckInterval = 10 * time.Second
)

// App собранное приложение.
type App struct {
	server          *http.Server
	grpcServer      *grpc.Server
	grpcListener    net.Listener
	health          *health.Server
	logger          *slog.Logger
	db              *repository.Storage
	dispatcher      *events.Dispatcher
	closers         []io.Closer
	shutdownTimeout time.Duration
}

// New подключается к базе, применяет миграции и собирает зависимости.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "tradingapi.New"

	db, err := repository.New(ctx, cfg.Database.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	db.SetPoolLimits(cfg.Database.MaxOpenConns, cfg.Database.ConnMaxIdle)

	app := &App{
		logger:          logger,
		db:              db,
		shutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
	}

	if err = migrations.Run(db.DB); err != nil {
		app.closeAll()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	observers, err := app.observers(ctx, cfg, registry)
	if err != nil {
		app.closeAll()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	app.dispatcher = events.NewDispatcher(logger, eventTimeout, observers...)

	metrics, err := middlewarectx.NewMetrics(registry)
	if err != nil {
		app.closeAll()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tokens := authservice.Tokens{
		Access: jwt.NewJWTMaker(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, jwt.AudienceAuth),
		Reset:  jwt.NewJWTMaker(cfg.Auth.ResetSecret, cfg.Auth.ResetTokenTTL, jwt.AudienceReset),
		Verify: jwt.NewJWTMaker(cfg.Auth.VerificationSecret, cfg.Auth.VerifyTokenTTL, jwt.AudienceVerify),
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Auth:               authservice.NewManager(db, tokens, app.dispatcher, logger),
		Users:              userservice.NewUserService(db, db, logger),
		Trades:             tradeservice.NewTradeService(memory.NewTradeStore(memory.SeedTrades()...), logger),
		Cookie:             CookieConfig(cfg.Auth, tokens.Access),
		Metrics:            metrics,
		Gatherer:           registry,
		Debug:              cfg.Debug,
		AuthRateLimitRPS:   cfg.Auth.RateLimitRPS,
		AuthRateLimitBurst: cfg.Auth.RateLimitBurst,
	})

	app.server = &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	if cfg.GRPCServer.Address != "" {
		lis, err := net.Listen("tcp", cfg.GRPCServer.Address)
		if err != nil {
			app.closeAll()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		app.grpcListener = lis
		app.grpcServer = grpc.NewServer()
		app.health = health.NewServer()
		healthpb.RegisterHealthServer(app.grpcServer, app.health)
	}

	return app, nil
}

// CookieConfig переводит настройки Auth в параметры cookie.
// Время жизни cookie берётся у того же Maker, который выпускает токен доступа.
func CookieConfig(a config.Auth, access jwt.Maker) cookie.Config {
	return cookie.Config{
		Name:     a.CookieName,
		Domain:   a.CookieDomain,
		MaxAge:   access.TTL(),
		Secure:   a.CookieSecure,
		SameSite: cookie.ParseSameSite(a.CookieSameSite),
	}
}

// observers собирает наблюдателей событий. RabbitMQ, Redis и SMTP
// подключаются, только если заданы в конфигурации.
func (a *App) observers(ctx context.Context, cfg *config.Config, reg prometheus.Registerer) ([]events.Observer, error) {
	const op = "tradingapi.observers"

	metricsObserver, err := events.NewMetricsObserver(reg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	observers := []events.Observer{events.NewLogObserver(a.logger), metricsObserver}

	if cfg.RabbitMQ.URL != "" {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL, cfg.RabbitMQ.MaxRetries, cfg.RabbitMQ.RetryDelay)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.closers = append(a.closers, conn)
		ch, err := rabbitmq.SetupExchange(conn, cfg.RabbitMQ.Exchange)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.closers = append(a.closers, ch)
		observers = append(observers, events.NewRabbitMQObserver(ch, cfg.RabbitMQ.Exchange))
		a.logger.Info("user events are published to RabbitMQ", slog.String("exchange", cfg.RabbitMQ.Exchange))
	}

	if cfg.Redis.Address != "" {
		client, err := events.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		a.closers = append(a.closers, client)
		observers = append(observers, events.NewRedisObserver(client, cfg.Redis.Channel))
		a.logger.Info("user events are published to Redis", slog.String("channel", cfg.Redis.Channel))
	}

	if cfg.SMTP.Host != "" {
		mailer := smtp.NewMailer(smtp.NewTransport(cfg.SMTP, a.logger), a.logger)
		observers = append(observers, events.NewMailObserver(mailer))
		a.logger.Info("reset and verification tokens are sent by email", slog.String("smtp_host", cfg.SMTP.Host))
	}

	return observers, nil
}

// Run запускает серверы и блокируется до отмены ctx или ошибки сервера.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	if a.grpcServer != nil {
		go func() {
			a.logger.Info("gRPC health service listening on", slog.String("address", a.grpcListener.Addr().String()))
			errCh <- a.grpcServer.Serve(a.grpcListener)
		}()
		go watchDatabase(ctx, a.db.CheckDatabaseReady, a.health, healthCheckInterval, a.logger)
	}

	var runErr error
	select {
	case runErr = <-errCh:
	case <-ctx.Done():
	}

	timeoutCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	a.logger.Info("shutting down HTTP server gracefully")
	if err := a.server.Shutdown(timeoutCtx); err != nil && runErr == nil {
		runErr = err
	}
	if a.grpcServer != nil {
		a.health.Shutdown()
		a.grpcServer.GracefulStop()
	}
	if err := a.dispatcher.Wait(timeoutCtx); err != nil {
		a.logger.Warn("pending user events dropped", sl.Err(err))
	}
	a.closeAll()
	return runErr
}

func (a *App) closeAll() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			a.logger.Warn("failed to close resource", sl.Err(err))
		}
	}
	a.closers = nil
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close database", sl.Err(err))
	}
}
