package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/dbx"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/config"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/mailing"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const resetMailSubject = "Change your password"

// AccountService provides account-related operations:
//   - Create: register accounts
//   - Access: verify email/password and produce the account identity
//   - ResetPassword / ValidateCode / ChangePassword: the reset flow
type AccountService struct {
	db         *sql.DB
	repos      repomanager.RepositoryManager
	codes      *VerificationService
	mailer     mailing.Mailer
	bcryptCost int
}

// NewAccountService constructs an AccountService using repositories, the
// verification-code service, a mailer, and server config.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, codes *VerificationService, mailer mailing.Mailer, cfg *config.Config) *AccountService {
	return &AccountService{
		db:         db,
		repos:      m,
		codes:      codes,
		mailer:     mailer,
		bcryptCost: cfg.BcryptCost,
	}
}

// Create registers a new account. The terms flag must be accepted, the email
// must be unregistered, and the password is hashed before it is persisted.
// The plaintext is never stored or returned.
func (s *AccountService) Create(ctx context.Context, name, email, password string, acceptedTerms bool) (*models.Account, error) {
	if !acceptedTerms {
		return nil, fmt.Errorf("acceptedTerms: %w", common.ErrorValidation)
	}

	repo := s.repos.Accounts(s.db)

	exists, err := repo.Exists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking account existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("email: %w", common.ErrorAlreadyExists)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	account := &models.Account{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Password:    hash,
		Permissions: models.PermissionStandard,
	}

	created, err := repo.Create(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	return created, nil
}

// Access verifies the email/password pair and returns the account identity.
// A missing account and a wrong password yield the same ErrorUnauthorized so
// account existence never leaks through the login path.
func (s *AccountService) Access(ctx context.Context, email, password string) (*models.AccountIdentity, error) {
	account, err := s.repos.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	return &models.AccountIdentity{
		ID:          account.ID,
		Name:        account.Name,
		Permissions: account.Permissions,
	}, nil
}

// ResetPassword starts the reset flow: the account must exist, a
// verification code is issued, and the code is mailed to the account holder.
// A mailer failure reports ErrorInternal but leaves the issued code in
// place; the send is best effort, not a transaction.
func (s *AccountService) ResetPassword(ctx context.Context, email string) (string, error) {
	account, err := s.repos.Accounts(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}

	code, err := s.codes.Issue(ctx, account.ID)
	if err != nil {
		return "", common.ErrorInternal
	}

	msg := mailing.Message{
		To:       account.Email,
		Subject:  resetMailSubject,
		Template: mailing.TemplateResetPassword,
		Payload:  map[string]any{"name": account.Name, "code": code.Code},
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return "", common.ErrorInternal
	}

	return account.ID, nil
}

// ValidateCode is the non-consuming check a client runs before showing the
// new-password form. Invalid, expired, and unknown codes all report
// ErrorNotFound without further detail.
func (s *AccountService) ValidateCode(ctx context.Context, accountID, code string) error {
	ok, err := s.codes.Verify(ctx, accountID, code)
	if err != nil {
		return common.ErrorInternal
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}

// ChangePassword finishes the reset flow. The code is re-verified here
// regardless of any earlier ValidateCode call, the new password is hashed
// and written, and only then is the code consumed. Both writes share one
// transaction, so a failed password write never burns the code.
func (s *AccountService) ChangePassword(ctx context.Context, accountID, password, code string) error {
	ok, err := s.codes.Verify(ctx, accountID, code)
	if err != nil {
		return common.ErrorInternal
	}
	if !ok {
		return common.ErrorUnauthorized
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return common.ErrorInternal
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repos.Accounts(tx).UpdatePassword(ctx, accountID, hash); err != nil {
			return err
		}
		return s.repos.VerificationCodes(tx).Delete(ctx, accountID)
	}); err != nil {
		return fmt.Errorf("error changing password: %w", err)
	}

	return nil
}

func (s *AccountService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
