// Package entity contains the core business objects of the blog,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered author. The email doubles as the login identifier and
// PasswordHash holds the bcrypt digest, never the plaintext.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
