package service

import (
	"time"

	"blog/internal/domain/entity"
)

// TokenService issues and verifies signed bearer tokens.
// Implementations are stateless; there is no server-side session table.
type TokenService interface {
	// Issue mints a token for subject valid for ttl. A non-positive ttl selects DefaultTTL.
	Issue(subject string, ttl time.Duration) (*entity.AccessToken, error)

	// Verify recovers the principal from a token string. Failures wrap one of
	// ErrTokenMalformed, ErrTokenBadSignature or ErrTokenExpired.
	Verify(tokenString string) (*entity.Principal, error)

	// DefaultTTL returns the configured access token lifetime.
	DefaultTTL() time.Duration
}
