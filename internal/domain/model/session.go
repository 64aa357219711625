package model

import "time"

// User is the identity record returned by a fresh login. It is never
// reconstructed from a restored token alone.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Session holds the bearer credential for the current page lifetime.
// A zero Session is the anonymous state.
type Session struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// IsAuthenticated is derived from token presence and must never be set
// independently.
func (s Session) IsAuthenticated() bool { return s.Token != "" }

// Expired reports whether the session's token is past its expiry at the
// given instant. An absent token is not "expired", just anonymous.
func (s Session) Expired(now time.Time) bool {
	return s.Token != "" && now.After(s.ExpiresAt)
}
