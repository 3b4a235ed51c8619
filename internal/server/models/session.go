package models

// Session bundles the access/refresh credential pair issued on login or
// rotation. Sessions are not persisted; the pair itself is the session.
type Session struct {
	AccessToken  string
	RefreshToken string
}
