package entity

import "time"

// TokenTypeBearer is the only token type issued by the service.
const TokenTypeBearer = "bearer"

// AccessToken is a signed, time-bounded bearer credential.
// It is immutable once issued and never persisted; expiry is the only way it stops working.
type AccessToken struct {
	// Value is the compact JWS sent to the client.
	Value string

	// TokenType is always TokenTypeBearer.
	TokenType string

	// Subject is the email of the authenticated user.
	Subject string

	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ExpiresIn returns the remaining lifetime relative to now, floored at zero.
func (t *AccessToken) ExpiresIn(now time.Time) time.Duration {
	if remaining := t.ExpiresAt.Sub(now); remaining > 0 {
		return remaining
	}

	return 0
}

// Principal is the authenticated identity behind a request.
// It is rebuilt from a verified token on every request.
type Principal struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Unexpired reports whether the principal's token is still inside its validity window.
func (p *Principal) Unexpired(now time.Time) bool {
	return now.Before(p.ExpiresAt)
}
