package smtp

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/trading-platform/internal/lib/sl"
)

// Mailer отправляет текстовые письма.
type Mailer struct {
	conn Connector
	log  *slog.Logger
}

// NewMailer создаёт Mailer поверх conn.
func NewMailer(conn Connector, log *slog.Logger) *Mailer {
	return &Mailer{conn: conn, log: log}
}

// Send отправляет письмо одному получателю.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	const op = "smtp.Mailer.Send"
	from := m.conn.From()

	msg := strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	client, err := m.conn.Connect(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Mail(from); err != nil {
		m.log.Error("failed to set MAIL FROM", slog.String("from", from), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := client.Rcpt(to); err != nil {
		m.log.Error("failed to set RCPT TO", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if _, err = wc.Write([]byte(msg)); err != nil {
		_ = wc.Close()
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = wc.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err = client.Quit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.log.Debug("email sent")
	return nil
}
