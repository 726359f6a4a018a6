// Package smtp отправляет письма через SMTP-сервер.
package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"

	"github.com/magabrotheeeer/trading-platform/internal/config"
	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
)

// Client интерфейс для SMTP клиента.
type Client interface {
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// Connector открывает сессию с SMTP-сервером.
type Connector interface {
	Connect(ctx context.Context) (Client, error)
	// From возвращает адрес отправителя.
	From() string
}

// Transport реализует Connector поверх net/smtp.
type Transport struct {
	cfg config.SMTP
	log *slog.Logger
}

// NewTransport создает новый экземпляр Transport.
func NewTransport(cfg config.SMTP, log *slog.Logger) *Transport {
	return &Transport{cfg: cfg, log: log}
}

// Connect устанавливает соединение с SMTP сервером.
// STARTTLS обязателен, если включён в конфигурации. Аутентификация
// выполняется, только если задан пользователь.
func (t *Transport) Connect(ctx context.Context) (Client, error) {
	const op = "smtp.Transport.Connect"
	addr := net.JoinHostPort(t.cfg.Host, strconv.Itoa(t.cfg.Port))

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		t.log.Error("failed to dial SMTP server", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client, err := smtp.NewClient(conn, t.cfg.Host)
	if err != nil {
		t.log.Error("failed to create SMTP client", sl.Err(err))
		if closeErr := conn.Close(); closeErr != nil {
			t.log.Error("failed to close connection", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fail := func(err error) (Client, error) {
		if closeErr := client.Close(); closeErr != nil {
			t.log.Error("failed to close client", sl.Err(closeErr))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if t.cfg.StartTLS {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			t.log.Error("SMTP server does not support STARTTLS")
			return fail(fmt.Errorf("smtp server does not support STARTTLS"))
		}
		tlsConfig := &tls.Config{
			ServerName: t.cfg.Host,
			MinVersion: tls.VersionTLS12,
		}
		if err = client.StartTLS(tlsConfig); err != nil {
			t.log.Error("failed to start TLS", sl.Err(err))
			return fail(err)
		}
	}

	if t.cfg.User != "" {
		auth := smtp.PlainAuth("", t.cfg.User, t.cfg.Password, t.cfg.Host)
		if err = client.Auth(auth); err != nil {
			t.log.Error("smtp auth failed", sl.Err(err))
			return fail(err)
		}
	}

	return client, nil
}

// From возвращает адрес отправителя: SMTP_FROM или пользователя SMTP.
func (t *Transport) From() string {
	if t.cfg.From != "" {
		return t.cfg.From
	}
	return t.cfg.User
}
