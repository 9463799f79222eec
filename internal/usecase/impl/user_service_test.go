package impl

import (
	"context"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestUserService(t *testing.T) (usecase.UserUsecase, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher) {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   newDiscardLogger(),
	}), userRepo, hasher
}

func TestUserService_Register_Success(t *testing.T) {
	svc, userRepo, hasher := createTestUserService(t)

	ctx := context.Background()
	generatedID := uuid.New()

	hasher.EXPECT().ValidatePasswordStrength("secret123").Return(nil)
	hasher.EXPECT().Hash("secret123").Return("digest", nil)
	userRepo.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "alice@example.com" && u.Name == "Alice" && u.PasswordHash == "digest"
	})).RunAndReturn(func(_ context.Context, u *entity.User) error {
		u.ID = generatedID

		return nil
	})

	user, err := svc.Register(ctx, usecase.RegisterUserInput{
		Name:     " Alice ",
		Email:    "alice@example.com ",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, generatedID, user.ID)
	assert.Equal(t, "digest", user.PasswordHash)
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestUserService_Register_WeakPassword(t *testing.T) {
	svc, _, hasher := createTestUserService(t)

	weakErr := errors.Wrap(domainerrors.ErrPasswordStrength, "password must be at least 8 characters")
	hasher.EXPECT().ValidatePasswordStrength("short").Return(weakErr)

	user, err := svc.Register(context.Background(), usecase.RegisterUserInput{
		Name: "Alice", Email: "alice@example.com", Password: "short",
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, userRepo, hasher := createTestUserService(t)

	ctx := context.Background()
	hasher.EXPECT().ValidatePasswordStrength("secret123").Return(nil)
	hasher.EXPECT().Hash("secret123").Return("digest", nil)
	userRepo.EXPECT().Create(ctx, mock.Anything).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered"))

	user, err := svc.Register(ctx, usecase.RegisterUserInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Register_HashFailure(t *testing.T) {
	svc, _, hasher := createTestUserService(t)

	hasher.EXPECT().ValidatePasswordStrength("secret123").Return(nil)
	hasher.EXPECT().Hash("secret123").Return("", domainerrors.ErrPasswordHashFailed)

	_, err := svc.Register(context.Background(), usecase.RegisterUserInput{
		Name: "Alice", Email: "alice@example.com", Password: "secret123",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_GetByID(t *testing.T) {
	svc, userRepo, _ := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	missing := uuid.New()
	userRepo.EXPECT().FindByID(ctx, id).Return(&entity.User{ID: id, Email: "alice@example.com"}, nil)
	userRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrUserNotFound)

	user, err := svc.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	_, err = svc.GetByID(ctx, missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Details(), missing.String())
}

func TestUserService_Me(t *testing.T) {
	svc, userRepo, _ := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com"}
	userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	userRepo.EXPECT().FindByEmail(ctx, "gone@example.com").Return(nil, repository.ErrUserNotFound)

	got, err := svc.Me(ctx, &entity.Principal{Subject: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = svc.Me(ctx, &entity.Principal{Subject: "gone@example.com"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))

	_, err = svc.Me(ctx, nil)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMissing))
}
