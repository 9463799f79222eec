package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail is applied wherever an email enters the service, so the
// stored value and the login lookup agree.
func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}

// Register validates the password, stores its digest and creates the user.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	digest, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: digest,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

// GetByID loads a user for display.
func (srv *userService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails("User with the id " + id.String() + " is not available")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// Me loads the user the token was issued to.
func (srv *userService) Me(ctx context.Context, principal *entity.Principal) (*entity.User, error) {
	return resolvePrincipalUser(ctx, srv.userRepo, principal)
}

// resolvePrincipalUser maps a token subject back to its user record. A valid
// token whose user no longer exists is reported as user-not-found.
func resolvePrincipalUser(ctx context.Context, repo repository.UserRepository, principal *entity.Principal) (*entity.User, error) {
	if principal == nil || principal.Subject == "" {
		return nil, domainerrors.ErrTokenMissing
	}

	user, err := repo.FindByEmail(ctx, principal.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "token subject has no user")
		}

		return nil, errors.Wrap(err, "failed to resolve principal")
	}

	return user, nil
}
