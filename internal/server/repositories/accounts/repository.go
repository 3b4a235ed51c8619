// Package accounts declares the repository contract for stored account
// records.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

// Repository defines single-record operations over account storage.
type Repository interface {
	// Create persists a new account and returns it. The caller supplies the
	// ID and an already-hashed password.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// GetByEmail looks up an account by email. Implementations return
	// common.ErrorNotFound when no such account exists.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// Exists reports whether an account with the given email is registered.
	Exists(ctx context.Context, email string) (bool, error)

	// UpdatePassword replaces the stored password hash for an account.
	UpdatePassword(ctx context.Context, accountID string, passwordHash string) error
}
