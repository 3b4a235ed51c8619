// Package services contains the server-side business logic: credential
// authentication, session issuance and rotation, and the password-reset
// verification-code flow.
package services

import (
	"context"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/auth"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/config"
	"github.com/dmitrijs2005/sessionkeeper/internal/server/models"
)

// SessionService mints access/refresh pairs and rotates them. It keeps no
// persisted state; everything it needs travels inside the signed claims.
type SessionService struct {
	environment auth.Environment
	secret      []byte
}

// NewSessionService constructs a SessionService from server config.
func NewSessionService(cfg *config.Config) *SessionService {
	return &SessionService{
		environment: auth.ParseEnvironment(cfg.Environment),
		secret:      []byte(cfg.SessionSecret),
	}
}

// Create issues a new session for an authenticated identity. The remember
// flag selects the longer duration tier of the current environment.
func (s *SessionService) Create(ctx context.Context, identity *models.AccountIdentity, remember bool) (*models.Session, error) {
	access, err := auth.SignToken(identity.ID, identity.Name, identity.Permissions,
		auth.SubjectAccess, auth.TokenDurations(s.environment, auth.SubjectAccess, remember), s.secret)
	if err != nil {
		return nil, common.ErrorInternal
	}

	refresh, err := auth.SignToken(identity.ID, identity.Name, identity.Permissions,
		auth.SubjectRefresh, auth.TokenDurations(s.environment, auth.SubjectRefresh, remember), s.secret)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &models.Session{AccessToken: access, RefreshToken: refresh}, nil
}

// Rotate exchanges an expired access token plus a live refresh token for a
// brand-new pair. The expired access claims come pre-decoded from the
// authorization layer (signature already checked, expiry ignored).
//
// The refresh token must verify under the refresh subject, be unexpired,
// be past its not-before window, and belong to the same account as the
// expired access token. Every failure collapses to ErrorUnauthorized so the
// caller learns nothing about which check tripped.
//
// Rotation always issues the short, non-remembered tier: presenting a
// refresh token does not extend the original session's lifetime class.
func (s *SessionService) Rotate(ctx context.Context, expiredAccess *auth.Claims, refreshToken string) (*models.Session, error) {
	if expiredAccess == nil {
		return nil, common.ErrorUnauthorized
	}

	claims, err := auth.VerifyToken(refreshToken, auth.SubjectRefresh, s.secret)
	if err != nil {
		return nil, common.ErrorUnauthorized
	}

	if claims.AccountID == "" || claims.AccountID != expiredAccess.AccountID {
		return nil, common.ErrorUnauthorized
	}

	identity := &models.AccountIdentity{
		ID:          expiredAccess.AccountID,
		Name:        expiredAccess.Name,
		Permissions: expiredAccess.Permissions,
	}

	return s.Create(ctx, identity, false)
}
