package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/config"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/repomanager"
)

const verificationCodeLength = 6

// VerificationService manages the single-use password-reset codes. Each
// account holds at most one live code; issuing again replaces it.
type VerificationService struct {
	db       *sql.DB
	repos    repomanager.RepositoryManager
	validity time.Duration
}

// NewVerificationService constructs a VerificationService using repositories
// and server config.
func NewVerificationService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *VerificationService {
	return &VerificationService{
		db:       db,
		repos:    m,
		validity: cfg.CodeValidityDuration,
	}
}

// Issue generates a fresh code for the account and stores it, replacing any
// previous code (last writer wins).
func (s *VerificationService) Issue(ctx context.Context, accountID string) (*models.VerificationCode, error) {
	value, err := common.MakeRandDigitCode(verificationCodeLength)
	if err != nil {
		return nil, common.ErrorInternal
	}

	code := &models.VerificationCode{
		AccountID: accountID,
		Code:      value,
		ExpiresAt: time.Now().Add(s.validity),
	}

	if err := s.repos.VerificationCodes(s.db).Upsert(ctx, code); err != nil {
		return nil, fmt.Errorf("error storing verification code: %w", err)
	}

	return code, nil
}

// Verify reports whether a matching, unexpired code exists for the account.
// Absent, expired, and mismatched codes all come back false, not as errors.
// Verify never deletes the code.
func (s *VerificationService) Verify(ctx context.Context, accountID string, code string) (bool, error) {
	stored, err := s.repos.VerificationCodes(s.db).Find(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error searching verification code: %w", err)
	}

	if !time.Now().Before(stored.ExpiresAt) {
		return false, nil
	}

	if subtle.ConstantTimeCompare([]byte(stored.Code), []byte(code)) != 1 {
		return false, nil
	}

	return true, nil
}
