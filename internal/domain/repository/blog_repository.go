package repository

import (
	"context"
	"errors"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBlogNotFound is returned when no blog matches the lookup.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines persistence operations for blog posts.
type BlogRepository interface {
	// List returns posts matching the filter, newest first.
	List(ctx context.Context, filter entity.BlogFilter) ([]*entity.Blog, error)

	// FindByID retrieves a single post.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)

	// Create persists a new post and fills in the generated ID and timestamps.
	Create(ctx context.Context, blog *entity.Blog) error

	// Update overwrites title, body and published state of an existing post.
	Update(ctx context.Context, blog *entity.Blog) error

	// Delete removes a post. Returns ErrBlogNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
