package verificationcodes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, code *models.VerificationCode) error {

	query :=
		`INSERT INTO verification_codes (account_id, code, expires_at)
         VALUES ($1, $2, $3)
		 ON CONFLICT (account_id) DO UPDATE SET code = $2, expires_at = $3
		 `

	_, err := r.db.ExecContext(ctx, query, code.AccountID, code.Code, code.ExpiresAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Find(ctx context.Context, accountID string) (*models.VerificationCode, error) {
	query :=
		`SELECT account_id, code, expires_at FROM verification_codes
		 WHERE account_id = $1
		 `

	code := &models.VerificationCode{}
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(&code.AccountID, &code.Code, &code.ExpiresAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return code, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, accountID string) error {
	query :=
		`DELETE FROM verification_codes
		 WHERE account_id = $1
		 `

	if _, err := r.db.ExecContext(ctx, query, accountID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}
