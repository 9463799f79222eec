package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"blog/internal/domain/repository"
	mockRepo "blog/internal/mocks/repository"
	mockSvc "blog/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// blogFixture wires a blogService to fresh mocks.
type blogFixture struct {
	t         *testing.T
	service   *blogService
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	blogRepo  *mockRepo.MockBlogRepository
	publisher *mockSvc.MockEventPublisher
	qrcode    *mockSvc.MockQRCodeService
}

func createTestBlogService(t *testing.T) *blogFixture {
	t.Helper()

	f := &blogFixture{
		t:         t,
		txManager: mockRepo.NewMockTransactionManager(t),
		userRepo:  mockRepo.NewMockUserRepository(t),
		blogRepo:  mockRepo.NewMockBlogRepository(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		qrcode:    mockSvc.NewMockQRCodeService(t),
	}

	f.service = NewBlogService(BlogServiceParams{
		TxManager: f.txManager,
		UserRepo:  f.userRepo,
		BlogRepo:  f.blogRepo,
		Publisher: f.publisher,
		QRCode:    f.qrcode,
		Logger:    newDiscardLogger(),
	}).(*blogService)

	return f
}

// onExecute runs the transaction callback against a repository factory
// prepared by setup and returns whatever the callback returns.
func (f *blogFixture) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}
