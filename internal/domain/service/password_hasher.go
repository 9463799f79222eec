// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted digest. Hashing the same password twice yields different digests.
	Hash(password string) (string, error)

	// Check reports whether password matches digest. A malformed digest is a mismatch.
	Check(password, digest string) bool

	// ValidatePasswordStrength checks a new password against the configured policy.
	ValidatePasswordStrength(password string) error
}
