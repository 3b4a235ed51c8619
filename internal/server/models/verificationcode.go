package models

import "time"

// VerificationCode is a single-use password-reset code. At most one live code
// exists per account; issuing a new one replaces the previous.
type VerificationCode struct {
	AccountID string
	Code      string
	ExpiresAt time.Time
}
