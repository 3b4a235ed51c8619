// Package mailing is the outbound-notification collaborator of the auth
// core. The core treats sending as best effort: a single failure signal,
// no retries.
package mailing

import "context"

// TemplateResetPassword renders the password-reset email. Payload keys:
// "name" (account holder) and "code" (the verification code).
const TemplateResetPassword = "resetpassword"

// Message describes one outbound email.
type Message struct {
	To       string
	Subject  string
	Template string
	Payload  map[string]any
}

// Mailer sends a single message. Implementations own their timeouts and
// cancellation; the auth core only observes success or failure.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
