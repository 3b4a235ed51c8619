// Package api defines the request/response types of the SessionKeeper HTTP
// API, shared by the server and its clients.
package api

// AccessRequest is the login payload for POST /api/v1/auth.
type AccessRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// SessionResponse carries a freshly issued credential pair.
type SessionResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// RegisterRequest is the payload for POST /api/v1/auth/register.
type RegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	AcceptedTerms bool   `json:"acceptedTerms"`
}

// RefreshRequest carries the refresh token for POST /api/v1/auth/refresh;
// the expired access token travels in the Authorization header.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ResetPasswordRequest starts the password-reset flow.
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordResponse returns the account the reset code was issued for.
type ResetPasswordResponse struct {
	AccountID string `json:"accountId"`
}

// ValidateCodeRequest checks a reset code without consuming it.
type ValidateCodeRequest struct {
	AccountID string `json:"accountId"`
	Code      string `json:"code"`
}

// ChangePasswordRequest finishes the password-reset flow.
type ChangePasswordRequest struct {
	AccountID string `json:"accountId"`
	Password  string `json:"password"`
	Code      string `json:"code"`
}

// MessageResponse is a generic acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
