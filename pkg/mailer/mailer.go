package mailer

import (
	"context"
	"net/mail"

	"github.com/corplearn/training-admin-api/pkg/config"
)

// Message is a single outbound email.
type Message struct {
	To          mail.Address
	Subject     string
	TextContent string
	HTMLContent string
}

// Mailer delivers messages to a single recipient per call. Implementations
// return an error per dispatch so callers can report per-recipient outcomes.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// New selects the backend configured in MailConfig.
func New(cfg config.MailConfig) Mailer {
	if cfg.Backend == "sendgrid" && cfg.SendgridKey != "" {
		return NewSendgridMailer(cfg)
	}
	return NewConsoleMailer(cfg)
}
