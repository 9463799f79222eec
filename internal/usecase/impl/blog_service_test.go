package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/repository"
	"blog/internal/domain/service"
	mockRepo "blog/internal/mocks/repository"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var alice = &entity.Principal{Subject: "alice@example.com"}

func TestBlogService_List(t *testing.T) {
	f := createTestBlogService(t)

	ctx := context.Background()
	published := true
	blogs := []*entity.Blog{{ID: uuid.New(), Title: "first"}}
	f.blogRepo.EXPECT().List(ctx, entity.BlogFilter{Published: &published, Limit: 5}).Return(blogs, nil)

	got, err := f.service.List(ctx, usecase.ListBlogsInput{Published: &published, Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, blogs, got)
}

func TestBlogService_Get_NotFound(t *testing.T) {
	f := createTestBlogService(t)

	ctx := context.Background()
	id := uuid.New()
	f.blogRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrBlogNotFound)

	blog, err := f.service.Get(ctx, id)

	assert.Nil(t, blog)
	require.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Blog with the id "+id.String()+" is not available", appErr.Details())
}

func TestBlogService_Create_UsesCallerAsAuthor(t *testing.T) {
	f := createTestBlogService(t)

	ctx := context.Background()
	author := &entity.User{ID: uuid.New(), Email: alice.Subject}
	blogID := uuid.New()

	f.userRepo.EXPECT().FindByEmail(ctx, alice.Subject).Return(author, nil)
	f.blogRepo.EXPECT().Create(ctx, mock.MatchedBy(func(b *entity.Blog) bool {
		return b.AuthorID == author.ID && b.Title == "Hello" && b.Published
	})).RunAndReturn(func(_ context.Context, b *entity.Blog) error {
		b.ID = blogID

		return nil
	})
	f.publisher.EXPECT().PublishBlogEvent(ctx, mock.MatchedBy(func(e *service.BlogEvent) bool {
		return e.Type == entity.BlogEventCreated && e.BlogID == blogID.String() && e.AuthorID == author.ID.String()
	})).Return(nil)

	blog, err := f.service.Create(ctx, alice, usecase.CreateBlogInput{Title: "Hello", Body: "World", Published: true})

	require.NoError(t, err)
	assert.Equal(t, blogID, blog.ID)
	assert.Equal(t, author.ID, blog.AuthorID)
}

func TestBlogService_Create_PublishFailureIsNotFatal(t *testing.T) {
	f := createTestBlogService(t)

	ctx := context.Background()
	author := &entity.User{ID: uuid.New(), Email: alice.Subject}

	f.userRepo.EXPECT().FindByEmail(ctx, alice.Subject).Return(author, nil)
	f.blogRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishBlogEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	blog, err := f.service.Create(ctx, alice, usecase.CreateBlogInput{Title: "Hello"})

	require.NoError(t, err)
	assert.NotNil(t, blog)
}

func TestBlogService_PublishFailureLogsCaller(t *testing.T) {
	f := createTestBlogService(t)

	var buf bytes.Buffer
	f.service.logger = slog.New(slog.NewJSONHandler(&buf, nil))

	ctx := deliverycontext.WithPrincipal(context.Background(), alice)
	author := &entity.User{ID: uuid.New(), Email: alice.Subject}

	f.userRepo.EXPECT().FindByEmail(ctx, alice.Subject).Return(author, nil)
	f.blogRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishBlogEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := f.service.Create(ctx, alice, usecase.CreateBlogInput{Title: "Hello"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"subject":"alice@example.com"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestBlogService_Create_UnknownAuthor(t *testing.T) {
	f := createTestBlogService(t)

	ctx := context.Background()
	f.userRepo.EXPECT().FindByEmail(ctx, alice.Subject).Return(nil, repository.ErrUserNotFound)

	blog, err := f.service.Create(ctx, alice, usecase.CreateBlogInput{Title: "Hello"})

	assert.Nil(t, blog)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestBlogService_Update_ByAuthor(t *testing.T) {
	f := createTestBlogService(t)

	ctx := context.Background()
	author := &entity.User{ID: uuid.New(), Email: alice.Subject}
	existing := &entity.Blog{ID: uuid.New(), Title: "old", Body: "old", AuthorID: author.ID}

	f.userRepo.EXPECT().FindByEmail(ctx, alice.Subject).Return(author, nil)
	f.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txBlogRepo := mockRepo.NewMockBlogRepository(t)
		factory.EXPECT().BlogRepo().Return(txBlogRepo)
		txBlogRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		txBlogRepo.EXPECT().Update(ctx, mock.MatchedBy(func(b *entity.Blog) bool {
			return b.Title == "new" && b.Body == "body" && b.Published
		})).Return(nil)
	})
	f.publisher.EXPECT().PublishBlogEvent(ctx, mock.MatchedBy(func(e *service.BlogEvent) bool {
		return e.Type == entity.BlogEventUpdated && e.Title == "new"
	})).Return(nil)

	blog, err := f.service.Update(ctx, alice, usecase.UpdateBlogInput{
		ID: existing.ID, Title: "new", Body: "body", Published: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "new", blog.Title)
}

func TestBlogService_Update_NotOwner(t *testing.T) {
	f := createTestBlogService(t)

	ctx := context.Background()
	caller := &entity.User{ID: uuid.New(), Email: alice.Subject}
	existing := &entity.Blog{ID: uuid.New(), AuthorID: uuid.New()}

	f.userRepo.EXPECT().FindByEmail(ctx, alice.Subject).Return(caller, nil)
	f.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txBlogRepo := mockRepo.NewMockBlogRepository(t)
		factory.EXPECT().BlogRepo().Return(txBlogRepo)
		txBlogRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	})

	blog, err := f.service.Update(ctx, alice, usecase.UpdateBlogInput{ID: existing.ID, Title: "hijack"})

	assert.Nil(t, blog)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBlogService_Update_Missing(t *testing.T) {
	f := createTestBlogService(t)

	ctx := context.Background()
	id := uuid.New()

	f.userRepo.EXPECT().FindByEmail(ctx, alice.Subject).Return(&entity.User{ID: uuid.New()}, nil)
	f.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txBlogRepo := mockRepo.NewMockBlogRepository(t)
		factory.EXPECT().BlogRepo().Return(txBlogRepo)
		txBlogRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrBlogNotFound)
	})

	_, err := f.service.Update(ctx, alice, usecase.UpdateBlogInput{ID: id})

	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))
}

func TestBlogService_Delete(t *testing.T) {
	f := createTestBlogService(t)

	ctx := context.Background()
	author := &entity.User{ID: uuid.New(), Email: alice.Subject}
	existing := &entity.Blog{ID: uuid.New(), AuthorID: author.ID}

	f.userRepo.EXPECT().FindByEmail(ctx, alice.Subject).Return(author, nil)
	f.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txBlogRepo := mockRepo.NewMockBlogRepository(t)
		factory.EXPECT().BlogRepo().Return(txBlogRepo)
		txBlogRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		txBlogRepo.EXPECT().Delete(ctx, existing.ID).Return(nil)
	})
	f.publisher.EXPECT().PublishBlogEvent(ctx, mock.MatchedBy(func(e *service.BlogEvent) bool {
		return e.Type == entity.BlogEventDeleted && e.BlogID == existing.ID.String()
	})).Return(nil)

	require.NoError(t, f.service.Delete(ctx, alice, existing.ID))
}

func TestBlogService_Delete_NotOwner(t *testing.T) {
	f := createTestBlogService(t)

	ctx := context.Background()
	existing := &entity.Blog{ID: uuid.New(), AuthorID: uuid.New()}

	f.userRepo.EXPECT().FindByEmail(ctx, alice.Subject).Return(&entity.User{ID: uuid.New()}, nil)
	f.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txBlogRepo := mockRepo.NewMockBlogRepository(t)
		factory.EXPECT().BlogRepo().Return(txBlogRepo)
		txBlogRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	})

	err := f.service.Delete(ctx, alice, existing.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBlogService_ShareQR(t *testing.T) {
	f := createTestBlogService(t)

	ctx := context.Background()
	id := uuid.New()
	missing := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	f.blogRepo.EXPECT().FindByID(ctx, id).Return(&entity.Blog{ID: id}, nil)
	f.blogRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrBlogNotFound)
	f.qrcode.EXPECT().GenerateBlogQR(id).Return(png, nil)

	got, err := f.service.ShareQR(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, png, got)

	_, err = f.service.ShareQR(ctx, missing)
	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))
}
