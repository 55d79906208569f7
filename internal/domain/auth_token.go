package domain

import "time"

// AuthToken records an issued bearer token so logout can revoke it before
// its natural expiry. Only the SHA-256 hash of the signed token is stored.
type AuthToken struct {
	ID        int64
	UserID    int64
	TokenHash string
	JTI       string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
