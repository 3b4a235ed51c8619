// Package models contains the persistence-facing data structures of the
// SessionKeeper server.
package models

import "time"

// PermissionStandard is the role every self-registered account starts with.
const PermissionStandard = "standard"

// Account is a stored account record. Password always holds the bcrypt hash,
// never the plaintext.
type Account struct {
	ID          string
	Name        string
	Email       string
	Password    string
	Permissions string
	CreatedAt   time.Time
}

// AccountIdentity is the immutable snapshot handed from authentication to
// session creation. It never carries the password hash.
type AccountIdentity struct {
	ID          string
	Name        string
	Permissions string
}
