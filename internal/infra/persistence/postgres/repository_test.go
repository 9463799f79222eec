package postgres

import (
	"context"
	"testing"
	"time"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the blog schema. A single
// connection keeps every statement on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.BlogModel{}))

	return db
}

func createTestUser(t *testing.T, repo repository.UserRepository, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Name: "Alice", PasswordHash: "$2a$10$digest"}
	require.NoError(t, repo.Create(context.Background(), user))

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	user := createTestUser(t, repo, "alice@example.com")
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
	assert.Equal(t, "$2a$10$digest", byEmail.PasswordHash)

	byID, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)
	assert.Equal(t, "Alice", byID.Name)
}

func TestUserRepository_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	createTestUser(t, repo, "alice@example.com")

	err := repo.Create(context.Background(), &entity.User{Email: "alice@example.com", Name: "Other", PasswordHash: "x"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestBlogRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, NewUserRepository(db), "alice@example.com")
	repo := NewBlogRepository(db)
	ctx := context.Background()

	blog := &entity.Blog{Title: "Hello", Body: "World", Published: false, AuthorID: author.ID}
	require.NoError(t, repo.Create(ctx, blog))
	assert.NotEqual(t, uuid.Nil, blog.ID)

	found, err := repo.FindByID(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", found.Title)
	assert.False(t, found.Published)
	assert.Equal(t, author.ID, found.AuthorID)

	blog.Title = "Hello again"
	blog.Published = true
	require.NoError(t, repo.Update(ctx, blog))
	assert.Equal(t, "Hello again", blog.Title)
	assert.True(t, blog.Published)
	assert.Equal(t, author.ID, blog.AuthorID)

	require.NoError(t, repo.Delete(ctx, blog.ID))

	_, err = repo.FindByID(ctx, blog.ID)
	assert.ErrorIs(t, err, repository.ErrBlogNotFound)
}

func TestBlogRepository_MissingRows(t *testing.T) {
	repo := NewBlogRepository(newTestDB(t))
	ctx := context.Background()

	err := repo.Update(ctx, &entity.Blog{ID: uuid.New(), Title: "t", Body: "b"})
	assert.ErrorIs(t, err, repository.ErrBlogNotFound)

	err = repo.Delete(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrBlogNotFound)
}

func TestBlogRepository_List(t *testing.T) {
	db := newTestDB(t)
	author := createTestUser(t, NewUserRepository(db), "alice@example.com")
	repo := NewBlogRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, published := range []bool{true, false, true} {
		require.NoError(t, repo.Create(ctx, &entity.Blog{
			Title:     []string{"first", "second", "third"}[i],
			Body:      "body",
			Published: published,
			AuthorID:  author.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	all, err := repo.List(ctx, entity.BlogFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Title)
	assert.Equal(t, "first", all[2].Title)

	published := true
	onlyPublished, err := repo.List(ctx, entity.BlogFilter{Published: &published})
	require.NoError(t, err)
	require.Len(t, onlyPublished, 2)
	for _, b := range onlyPublished {
		assert.True(t, b.Published)
	}

	limited, err := repo.List(ctx, entity.BlogFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "third", limited[0].Title)
}

func TestClampBlogLimit(t *testing.T) {
	assert.Equal(t, defaultBlogListLimit, clampBlogLimit(0))
	assert.Equal(t, defaultBlogListLimit, clampBlogLimit(-3))
	assert.Equal(t, 25, clampBlogLimit(25))
	assert.Equal(t, maxBlogListLimit, clampBlogLimit(1000))
}

func TestTransactionManager(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			return f.UserRepo().Create(ctx, &entity.User{Email: "committed@example.com", Name: "C", PasswordHash: "x"})
		})
		require.NoError(t, err)

		_, err = NewUserRepository(db).FindByEmail(ctx, "committed@example.com")
		assert.NoError(t, err)
	})

	t.Run("rolls back and returns the callback error", func(t *testing.T) {
		sentinel := errors.New("stop")
		err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.UserRepo().Create(ctx, &entity.User{Email: "rolled@example.com", Name: "R", PasswordHash: "x"}); err != nil {
				return err
			}

			return sentinel
		})
		assert.ErrorIs(t, err, sentinel)

		_, err = NewUserRepository(db).FindByEmail(ctx, "rolled@example.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}
