// Package verificationcodes declares the repository contract for single-use
// password-reset codes.
package verificationcodes

import (
	"context"

	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

// Repository defines operations over stored verification codes. Each account
// holds at most one code at a time.
type Repository interface {
	// Upsert stores a code for the account, replacing any previous one
	// (last writer wins).
	Upsert(ctx context.Context, code *models.VerificationCode) error

	// Find returns the stored code for the account, or common.ErrorNotFound.
	Find(ctx context.Context, accountID string) (*models.VerificationCode, error)

	// Delete removes the stored code for the account. Deleting an absent
	// code is not an error.
	Delete(ctx context.Context, accountID string) error
}
