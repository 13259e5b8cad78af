package authdomain

import "time"

// Claims represents the domain model for authentication claims.
// The payload is typed end to end so the claim carrying the user identity
// cannot drift between issuance and verification.
type Claims struct {
	UserID    int64
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// IsExpired checks if the claims have expired.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
