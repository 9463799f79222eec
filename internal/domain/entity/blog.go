package entity

import (
	"time"

	"github.com/google/uuid"
)

// Blog is a single post written by a user.
type Blog struct {
	ID        uuid.UUID
	Title     string
	Body      string
	Published bool
	AuthorID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether the given user wrote the post.
func (b *Blog) IsOwnedBy(userID uuid.UUID) bool {
	return b.AuthorID == userID
}

// BlogFilter narrows a blog listing.
type BlogFilter struct {
	Published *bool // nil lists posts regardless of state
	Limit     int
}
