package repository

import "time"

// TokenStore persists the bearer token and its expiry across restarts.
// Both values are written together and removed together; nothing else is
// part of the session contract.
type TokenStore interface {
	// Load returns domain.ErrNotFound when no token is persisted.
	Load() (token string, expiresAt time.Time, err error)
	Save(token string, expiresAt time.Time) error
	// Clear is a no-op when nothing is persisted.
	Clear() error
}
