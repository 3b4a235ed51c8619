// Package repomanager exposes a single factory for all server repositories,
// so services can obtain them bound to either a plain connection or a
// transaction handle.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/verificationcodes"
)

// RepositoryManager builds repositories over a DBTX (connection or tx) and
// runs schema migrations.
type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	VerificationCodes(db dbx.DBTX) verificationcodes.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
