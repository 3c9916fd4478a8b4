package model

import "time"

// Session is the persisted authentication state for the remote API.
type Session struct {
	// Token is the opaque credential attached to authenticated calls
	Token string `json:"token"`

	// Expiry is the server-issued end of the token's validity window
	Expiry time.Time `json:"expiry"`
}

// Expired reports whether the validity window has passed.
func (s Session) Expired() bool {
	return !s.Expiry.IsZero() && time.Now().After(s.Expiry)
}
