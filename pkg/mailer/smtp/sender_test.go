package smtp

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	gomail "gopkg.in/mail.v2"

	"github.com/dmitrymomot/luckymail/pkg/mailer"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

func TestNew(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})
	require.ErrorIs(t, err, ErrMissingHost)

	s, err := New(Config{Host: "smtp.example.com"})
	require.NoError(t, err)

	d, ok := s.dialer.(*gomail.Dialer)
	require.True(t, ok)
	require.Equal(t, DefaultPort, d.Port)
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	msg := &mailer.Message{
		From:    mailer.Identity{Email: "from@example.com", Name: "Quotes"},
		To:      []mailer.Identity{{Email: "to@example.com", Name: "Reader"}, {Email: "other@example.com"}},
		Subject: "New Data Row!",
		HTML:    "<p>hello</p>",
	}

	t.Run("builds html message", func(t *testing.T) {
		t.Parallel()

		fake := &fakeDialer{}
		result, err := (&Sender{dialer: fake}).Send(context.Background(), msg)
		require.NoError(t, err)
		require.Equal(t, ProviderName, result.Provider)
		require.Len(t, fake.sent, 1)

		m := fake.sent[0]
		require.Equal(t, []string{`"Quotes" <from@example.com>`}, m.GetHeader("From"))
		require.Equal(t, []string{`"Reader" <to@example.com>`, "other@example.com"}, m.GetHeader("To"))
		require.Equal(t, []string{"New Data Row!"}, m.GetHeader("Subject"))

		var buf bytes.Buffer
		_, err = m.WriteTo(&buf)
		require.NoError(t, err)
		require.Contains(t, buf.String(), "text/html")
		require.Contains(t, buf.String(), "<p>hello</p>")
	})

	t.Run("empty recipients", func(t *testing.T) {
		t.Parallel()

		fake := &fakeDialer{}
		_, err := (&Sender{dialer: fake}).Send(context.Background(), &mailer.Message{From: msg.From})
		require.NoError(t, err)
		require.Empty(t, fake.sent[0].GetHeader("To"))
	})

	t.Run("dial error", func(t *testing.T) {
		t.Parallel()

		dialErr := errors.New("connection refused")
		_, err := (&Sender{dialer: &fakeDialer{err: dialErr}}).Send(context.Background(), msg)
		require.ErrorIs(t, err, dialErr)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		fake := &fakeDialer{}
		_, err := (&Sender{dialer: fake}).Send(ctx, msg)
		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, fake.sent)
	})
}
