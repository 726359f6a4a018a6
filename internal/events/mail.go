package events

import (
	"context"
	"fmt"
)

// MailSender отправляет письмо одному получателю.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// MailObserver отправляет пользователю токены сброса пароля и верификации.
// Остальные события игнорируются.
type MailObserver struct {
	sender MailSender
}

// NewMailObserver создаёт почтового наблюдателя.
func NewMailObserver(sender MailSender) *MailObserver {
	return &MailObserver{sender: sender}
}

// Notify реализует Observer.
func (o *MailObserver) Notify(ctx context.Context, e Event) error {
	const op = "events.MailObserver.Notify"

	var subject, body string
	switch e.Kind {
	case KindForgotPassword:
		subject = "Сброс пароля"
		body = fmt.Sprintf("Здравствуйте!\n\nДля сброса пароля отправьте этот токен на /auth/reset-password:\n\n%s\n\n"+
			"Если вы не запрашивали сброс, просто проигнорируйте письмо.", e.Token)
	case KindRequestVerify:
		subject = "Подтверждение e-mail"
		body = fmt.Sprintf("Здравствуйте!\n\nДля подтверждения адреса отправьте этот токен на /auth/verify:\n\n%s", e.Token)
	default:
		return nil
	}

	if e.Email == "" || e.Token == "" {
		return fmt.Errorf("%s: event %s without email or token", op, e.Kind)
	}
	if err := o.sender.Send(ctx, e.Email, subject, body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
