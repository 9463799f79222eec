package impl

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	service      *authService
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T, now time.Time) *authFixture {
	t.Helper()

	f := &authFixture{
		userRepo:     mockRepo.NewMockUserRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}
	f.service = NewAuthService(AuthServiceParams{
		UserRepo:     f.userRepo,
		Hasher:       f.hasher,
		TokenService: f.tokenService,
		Logger:       newDiscardLogger(),
	}).(*authService)
	f.service.now = func() time.Time { return now }

	return f
}

func TestAuthService_Login_Success(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f := createTestAuthService(t, now)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "digest"}
	token := &entity.AccessToken{
		Value:     "signed.jwt.value",
		TokenType: entity.TokenTypeBearer,
		Subject:   user.Email,
		IssuedAt:  now,
		ExpiresAt: now.Add(30 * time.Minute),
	}

	f.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("secret123", "digest").Return(true)
	f.tokenService.EXPECT().DefaultTTL().Return(30 * time.Minute)
	f.tokenService.EXPECT().Issue("alice@example.com", 30*time.Minute).Return(token, nil)

	out, err := f.service.Login(ctx, usecase.LoginInput{Username: "alice@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.value", out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
	assert.Equal(t, 30*time.Minute, out.ExpiresIn)
}

func TestAuthService_Login_TrimsEmailLikeRegistration(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f := createTestAuthService(t, now)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "digest"}
	token := &entity.AccessToken{Value: "jwt", TokenType: entity.TokenTypeBearer, Subject: user.Email, ExpiresAt: now.Add(time.Minute)}

	f.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("secret123", "digest").Return(true)
	f.tokenService.EXPECT().DefaultTTL().Return(time.Minute)
	f.tokenService.EXPECT().Issue("alice@example.com", time.Minute).Return(token, nil)

	out, err := f.service.Login(ctx, usecase.LoginInput{Username: "  alice@example.com\t", Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "jwt", out.AccessToken)
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	ctx := context.Background()

	unknown := createTestAuthService(t, time.Now())
	unknown.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, unknownErr := unknown.service.Login(ctx, usecase.LoginInput{Username: "nobody@example.com", Password: "secret123"})

	wrong := createTestAuthService(t, time.Now())
	wrong.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "digest"}, nil)
	wrong.hasher.EXPECT().Check("nope", "digest").Return(false)

	_, wrongErr := wrong.service.Login(ctx, usecase.LoginInput{Username: "alice@example.com", Password: "nope"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_StoreFailureIsNotInvalidCredentials(t *testing.T) {
	f := createTestAuthService(t, time.Now())

	ctx := context.Background()
	dbErr := errors.New("connection refused")
	f.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(nil, dbErr)

	out, err := f.service.Login(ctx, usecase.LoginInput{Username: "alice@example.com", Password: "secret123"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, dbErr))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_IssueFailure(t *testing.T) {
	f := createTestAuthService(t, time.Now())

	ctx := context.Background()
	issueErr := errors.New("signing failed")
	f.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: "digest"}, nil)
	f.hasher.EXPECT().Check("secret123", "digest").Return(true)
	f.tokenService.EXPECT().DefaultTTL().Return(time.Minute)
	f.tokenService.EXPECT().Issue("alice@example.com", time.Minute).Return(nil, issueErr)

	out, err := f.service.Login(ctx, usecase.LoginInput{Username: "alice@example.com", Password: "secret123"})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, issueErr))
	assert.Contains(t, err.Error(), "failed to issue access token")
}
