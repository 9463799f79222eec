package handler

import (
	"net/http"
	"testing"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	mockUsecase "blog/internal/mocks/usecase"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockUserUsecase) {
	t.Helper()

	userUC := mockUsecase.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/user", h.Register)
	e.GET("/user/:id", h.Show)
	e.GET("/user/me", h.Me, asPrincipal(alice))
	e.GET("/anonymous/me", h.Me)

	return e, userUC
}

func TestUserHandler_Register(t *testing.T) {
	e, userUC := newUserTestEcho(t)

	user := &entity.User{
		ID:           uuid.New(),
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$digest",
		CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	userUC.EXPECT().Register(mock.Anything, usecase.RegisterUserInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "Sup3rSecret!",
	}).Return(user, nil)

	rec := doJSON(t, e, http.MethodPost, "/user", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "Sup3rSecret!",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "digest")

	var got UserResponse
	decodeData(t, rec, &got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestUserHandler_Register_InvalidEmail(t *testing.T) {
	e, _ := newUserTestEcho(t)

	rec := doJSON(t, e, http.MethodPost, "/user", map[string]string{
		"name":     "Alice",
		"email":    "not-an-email",
		"password": "Sup3rSecret!",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]any{"email": "email"}, decodeError(t, rec).Error.Details)
}

func TestUserHandler_Register_Duplicate(t *testing.T) {
	e, userUC := newUserTestEcho(t)

	userUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	rec := doJSON(t, e, http.MethodPost, "/user", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "Sup3rSecret!",
	})

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "USER_ALREADY_EXISTS", decodeError(t, rec).Error.Code)
}

func TestUserHandler_Show(t *testing.T) {
	e, userUC := newUserTestEcho(t)

	id := uuid.New()
	userUC.EXPECT().GetByID(mock.Anything, id).Return(&entity.User{ID: id, Name: "Alice"}, nil)

	rec := doJSON(t, e, http.MethodGet, "/user/"+id.String(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got UserResponse
	decodeData(t, rec, &got)
	assert.Equal(t, id, got.ID)
}

func TestUserHandler_Show_NotFoundCarriesDetails(t *testing.T) {
	e, userUC := newUserTestEcho(t)

	id := uuid.New()
	userUC.EXPECT().GetByID(mock.Anything, id).
		Return(nil, domainerrors.ErrUserNotFound.WithDetails("User with the id "+id.String()+" is not available"))

	rec := doJSON(t, e, http.MethodGet, "/user/"+id.String(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User with the id "+id.String()+" is not available", decodeError(t, rec).Error.Details)
}

func TestUserHandler_Show_InvalidID(t *testing.T) {
	e, _ := newUserTestEcho(t)

	rec := doJSON(t, e, http.MethodGet, "/user/42", nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
}

func TestUserHandler_Me(t *testing.T) {
	e, userUC := newUserTestEcho(t)

	userUC.EXPECT().Me(mock.Anything, alice).Return(&entity.User{Email: alice.Subject}, nil)

	rec := doJSON(t, e, http.MethodGet, "/user/me", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got UserResponse
	decodeData(t, rec, &got)
	assert.Equal(t, alice.Subject, got.Email)
}

func TestUserHandler_Me_WithoutPrincipal(t *testing.T) {
	e, _ := newUserTestEcho(t)

	rec := doJSON(t, e, http.MethodGet, "/anonymous/me", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "TOKEN_MISSING", decodeError(t, rec).Error.Code)
}
