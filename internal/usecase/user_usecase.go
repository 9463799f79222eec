package usecase

import (
	"context"

	"blog/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterUserInput) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// Me resolves the user behind an authenticated principal.
	Me(ctx context.Context, principal *entity.Principal) (*entity.User, error)
}
