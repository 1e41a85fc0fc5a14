package notifier

import (
	"fmt"
	"net/smtp"
	"strings"
)

type Mailer interface {
	Send(to string, subject string, body string) error
}

// SMTPMailer talks plain unauthenticated SMTP; works against Mailpit in dev
// and any relay in front of a real provider.
type SMTPMailer struct {
	addr string
	from string
}

func NewSMTPMailer(addr, from string) *SMTPMailer {
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@agendly.local"
	}
	return &SMTPMailer{addr: addr, from: from}
}

func (m *SMTPMailer) Send(to string, subject string, body string) error {
	msg := buildMessage(m.from, to, subject, body)
	return smtp.SendMail(m.addr, nil, m.from, []string{to}, []byte(msg))
}

// Minimal RFC 5322 message; enough for most relays.
func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
