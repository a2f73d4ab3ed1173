package mailer

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/corplearn/training-admin-api/pkg/config"
)

// ConsoleMailer writes messages to the process log instead of sending them.
// Used in development and as the default when no SendGrid key is configured.
type ConsoleMailer struct {
	fromName    string
	fromAddress string
	subjPrefix  string

	mu   sync.Mutex
	sent []Message
}

var _ Mailer = (*ConsoleMailer)(nil)

// NewConsoleMailer constructs the console backend.
func NewConsoleMailer(cfg config.MailConfig) *ConsoleMailer {
	return &ConsoleMailer{
		fromName:    cfg.FromName,
		fromAddress: cfg.FromAddress,
		subjPrefix:  cfg.SubjPrefix,
	}
}

// Send logs the message and records it for inspection in tests.
func (m *ConsoleMailer) Send(_ context.Context, msg Message) error {
	body := new(strings.Builder)
	_, _ = fmt.Fprintf(body, "From: %s <%s>\r\n", m.fromName, m.fromAddress)
	_, _ = fmt.Fprintf(body, "To: %s\r\n", msg.To.String())
	_, _ = fmt.Fprintf(body, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	_, _ = fmt.Fprintf(body, "Subject: %s\r\n\r\n", m.subjPrefix+msg.Subject)
	if msg.TextContent != "" {
		_, _ = fmt.Fprintf(body, "%s\r\n", msg.TextContent)
	}
	if msg.HTMLContent != "" {
		_, _ = fmt.Fprintf(body, "%s\r\n", msg.HTMLContent)
	}
	log.Println(body.String())

	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	return nil
}

// Sent returns a copy of all messages delivered so far.
func (m *ConsoleMailer) Sent() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.sent))
	copy(out, m.sent)
	return out
}
