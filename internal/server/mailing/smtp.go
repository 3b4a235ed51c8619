package mailing

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPMailer delivers messages through a plain SMTP relay.
type SMTPMailer struct {
	addr string
	from string
}

// NewSMTPMailer builds a mailer for the relay at addr ("host:port") sending
// from the given address.
func NewSMTPMailer(addr, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, from: from}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	body, err := renderTemplate(msg.Template, msg.Payload)
	if err != nil {
		return err
	}

	data := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.from, msg.To, msg.Subject, body)

	if err := smtp.SendMail(m.addr, nil, m.from, []string{msg.To}, []byte(data)); err != nil {
		return fmt.Errorf("error sending mail: %w", err)
	}

	return nil
}
