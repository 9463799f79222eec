// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"blog/config"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxInput is the number of bytes bcrypt actually reads.
const bcryptMaxInput = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher, wired from config by Fx.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	policy := config.PasswordStrengthConfig{MinLength: 8, MaxLength: bcryptMaxInput}
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return newBcryptHasher(cost, policy)
}

// NewBcryptHasherWithCost builds a hasher with the default strength policy.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return newBcryptHasher(cost, config.PasswordStrengthConfig{MinLength: 8, MaxLength: bcryptMaxInput})
}

func newBcryptHasher(cost int, policy config.PasswordStrengthConfig) *bcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxInput {
		policy.MaxLength = bcryptMaxInput
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt draws a fresh salt on every call.
func (h *bcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(digest), nil
}

// Check compares a plaintext password with a bcrypt digest.
// bcrypt compares in constant time; any parse failure counts as a mismatch.
func (h *bcryptHasher) Check(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// ValidatePasswordStrength applies the configured policy to a new password.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.policy.MinLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "must be at least %d characters long", h.policy.MinLength)
	}
	if len(password) > h.policy.MaxLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength, "must be at most %d bytes long", h.policy.MaxLength)
	}
	if h.policy.RequireLowercase && !h.hasLowercase(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one lowercase letter")
	}
	if h.policy.RequireUppercase && !h.hasUppercase(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one uppercase letter")
	}
	if h.policy.RequireNumbers && !h.hasNumbers(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one number")
	}
	if h.policy.RequireSpecial && !h.hasSpecialChars(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength, "must contain at least one special character")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsUpper) >= 0
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	}) >= 0
}
