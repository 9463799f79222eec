package impl

import (
	"bytes"
	"context"
	"io"
	"testing"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	mockSvc "blog/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestShareCodeService(t *testing.T) (*shareCodeService, *mockSvc.MockPhotoStorage, *mockSvc.MockQRCodeService) {
	t.Helper()

	storage := mockSvc.NewMockPhotoStorage(t)
	qr := mockSvc.NewMockQRCodeService(t)

	return NewShareCodeService(ShareCodeServiceParams{
		Storage: storage,
		QRCode:  qr,
		Logger:  newDiscardLogger(),
	}).(*shareCodeService), storage, qr
}

func TestShareCodeService_PublishedPostIsRendered(t *testing.T) {
	for _, eventType := range []entity.BlogEventType{entity.BlogEventCreated, entity.BlogEventUpdated} {
		t.Run(string(eventType), func(t *testing.T) {
			srv, storage, qr := createTestShareCodeService(t)

			ctx := context.Background()
			blogID := uuid.New()
			png := []byte("png-bytes")

			qr.EXPECT().GenerateBlogQR(blogID).Return(png, nil)
			storage.EXPECT().Upload(ctx, "share-codes/"+blogID.String()+".png", mock.Anything, "image/png").
				RunAndReturn(func(_ context.Context, _ string, r io.Reader, _ string) (int64, error) {
					data, err := io.ReadAll(r)
					require.NoError(t, err)
					assert.True(t, bytes.Equal(png, data))

					return int64(len(data)), nil
				})

			err := srv.HandleBlogEvent(ctx, &service.BlogEvent{Type: eventType, BlogID: blogID.String(), Published: true})
			require.NoError(t, err)
		})
	}
}

func TestShareCodeService_UnpublishedOrDeletedPostIsRemoved(t *testing.T) {
	tests := []*service.BlogEvent{
		{Type: entity.BlogEventUpdated, Published: false},
		{Type: entity.BlogEventDeleted, Published: true},
	}

	for _, event := range tests {
		t.Run(string(event.Type), func(t *testing.T) {
			srv, storage, _ := createTestShareCodeService(t)

			ctx := context.Background()
			blogID := uuid.New()
			event.BlogID = blogID.String()

			storage.EXPECT().Delete(ctx, "share-codes/"+blogID.String()+".png").Return(nil)

			require.NoError(t, srv.HandleBlogEvent(ctx, event))
		})
	}
}

func TestShareCodeService_InvalidEvents(t *testing.T) {
	srv, _, _ := createTestShareCodeService(t)
	ctx := context.Background()

	err := srv.HandleBlogEvent(ctx, &service.BlogEvent{Type: entity.BlogEventCreated, BlogID: "not-a-uuid"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	err = srv.HandleBlogEvent(ctx, &service.BlogEvent{Type: "blog.archived", BlogID: uuid.NewString()})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestShareCodeService_StorageFailurePropagates(t *testing.T) {
	srv, storage, qr := createTestShareCodeService(t)

	ctx := context.Background()
	blogID := uuid.New()

	qr.EXPECT().GenerateBlogQR(blogID).Return([]byte("png"), nil)
	storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, "image/png").
		Return(int64(0), errors.Wrap(domainerrors.ErrStorageUnavailable, "bucket offline"))

	err := srv.HandleBlogEvent(ctx, &service.BlogEvent{Type: entity.BlogEventCreated, BlogID: blogID.String(), Published: true})

	assert.True(t, errors.Is(err, domainerrors.ErrStorageUnavailable))
}
