// Package auth implements the signed-credential layer of SessionKeeper:
// HS256 JWTs carrying an account identity, a subject tag separating access
// tokens from refresh tokens, and the environment-keyed duration policy.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Subject tags a credential so an access token can never stand in for a
// refresh token or vice versa.
type Subject string

const (
	SubjectAccess  Subject = "access"
	SubjectRefresh Subject = "refresh"
)

// Claims is the full claim set carried by every SessionKeeper credential.
// AccountID travels as "aid"; the registered Subject holds the Subject tag.
type Claims struct {
	jwt.RegisteredClaims
	AccountID   string `json:"aid"`
	Name        string `json:"name,omitempty"`
	Permissions string `json:"perm,omitempty"`
}

// SignToken issues a credential for the given account with the supplied
// durations. IssuedAt and ExpiresAt are always set; NotBefore is set only
// when d.NotBefore is positive (refresh tokens).
func SignToken(accountID, name, permissions string, subject Subject, d Durations, secretKey []byte) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(subject),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(d.TTL)),
		},
		AccountID:   accountID,
		Name:        name,
		Permissions: permissions,
	}
	if d.NotBefore > 0 {
		claims.NotBefore = jwt.NewNumericDate(now.Add(d.NotBefore))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// VerifyToken checks the signature and time claims of tokenString and
// returns its claims. Failures map to distinct sentinels:
//
//	common.ErrTokenExpired         - now is past ExpiresAt
//	common.ErrTokenNotYetValid     - now is before NotBefore
//	common.ErrTokenSubjectMismatch - subject differs from expected
//	common.ErrInvalidToken         - bad signature or malformed token
func VerifyToken(tokenString string, expected Subject, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return nil, common.ErrTokenNotYetValid
	case err != nil:
		return nil, common.ErrInvalidToken
	}

	if claims.Subject != string(expected) {
		return nil, common.ErrTokenSubjectMismatch
	}

	return claims, nil
}

// VerifyExpiredToken checks signature and subject but ignores time claims.
// The refresh endpoint uses it to decode the expired access token a client
// presents alongside its refresh token.
func VerifyExpiredToken(tokenString string, expected Subject, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithoutClaimsValidation())
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	if claims.Subject != string(expected) {
		return nil, common.ErrTokenSubjectMismatch
	}

	return claims, nil
}
