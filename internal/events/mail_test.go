package events

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MailSenderMock struct {
	mock.Mock
}

func (m *MailSenderMock) Send(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

func TestMailObserver_SendsTokens(t *testing.T) {
	tests := []struct {
		kind        Kind
		wantSubject string
	}{
		{kind: KindForgotPassword, wantSubject: "Сброс пароля"},
		{kind: KindRequestVerify, wantSubject: "Подтверждение e-mail"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			sender := new(MailSenderMock)
			sender.On("Send", mock.Anything, "user@example.com", tt.wantSubject,
				mock.MatchedBy(func(body string) bool { return strings.Contains(body, "tok-123") }),
			).Return(nil).Once()

			err := NewMailObserver(sender).Notify(context.Background(),
				Event{Kind: tt.kind, UserID: 1, Email: "user@example.com", Token: "tok-123"})
			require.NoError(t, err)
			sender.AssertExpectations(t)
		})
	}
}

func TestMailObserver_IgnoresOtherKinds(t *testing.T) {
	sender := new(MailSenderMock)

	for _, kind := range []Kind{KindRegistered, KindResetPassword, KindVerified, KindUpdated} {
		require.NoError(t, NewMailObserver(sender).Notify(context.Background(), Event{Kind: kind, Email: "a@b.cd"}))
	}
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMailObserver_Errors(t *testing.T) {
	sender := new(MailSenderMock)
	errSMTP := errors.New("smtp down")
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errSMTP).Once()

	o := NewMailObserver(sender)
	err := o.Notify(context.Background(), Event{Kind: KindForgotPassword, Email: "a@b.cd", Token: "t"})
	assert.ErrorIs(t, err, errSMTP)

	err = o.Notify(context.Background(), Event{Kind: KindForgotPassword, Email: "a@b.cd"})
	assert.Error(t, err)
	sender.AssertExpectations(t)
}
