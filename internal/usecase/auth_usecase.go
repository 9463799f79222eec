// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// LoginInput carries the OAuth2 password-flow credentials. Username is the
// user's email address.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput is the freshly minted bearer token.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
}

// AuthUsecase exchanges credentials for an access token.
type AuthUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
}
