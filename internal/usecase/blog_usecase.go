package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// ListBlogsInput narrows a listing. A nil Published returns every post.
type ListBlogsInput struct {
	Published *bool
	Limit     int
}

// CreateBlogInput is a new post. The author comes from the principal.
type CreateBlogInput struct {
	Title     string
	Body      string
	Published bool
}

// UpdateBlogInput replaces the editable fields of a post.
type UpdateBlogInput struct {
	ID        uuid.UUID
	Title     string
	Body      string
	Published bool
}

// BlogUsecase covers reading and writing blog posts. Writes require the
// caller to be the post's author.
type BlogUsecase interface {
	List(ctx context.Context, input ListBlogsInput) ([]*entity.Blog, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Blog, error)
	Create(ctx context.Context, principal *entity.Principal, input CreateBlogInput) (*entity.Blog, error)
	Update(ctx context.Context, principal *entity.Principal, input UpdateBlogInput) (*entity.Blog, error)
	Delete(ctx context.Context, principal *entity.Principal, id uuid.UUID) error
	// ShareQR renders a PNG share code for an existing post.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
