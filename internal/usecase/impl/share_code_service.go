package impl

import (
	"bytes"
	"context"
	"log/slog"

	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const shareCodePrefix = "share-codes/"

// shareCodeService implements the ShareCodeUsecase interface.
type shareCodeService struct {
	storage service.PhotoStorage
	qrcode  service.QRCodeService
	logger  *slog.Logger
}

// ShareCodeServiceParams holds dependencies for ShareCodeService, injected by Fx.
type ShareCodeServiceParams struct {
	fx.In

	Storage service.PhotoStorage
	QRCode  service.QRCodeService
	Logger  *slog.Logger
}

// NewShareCodeService is the constructor for shareCodeService.
func NewShareCodeService(params ShareCodeServiceParams) usecase.ShareCodeUsecase {
	return &shareCodeService{
		storage: params.Storage,
		qrcode:  params.QRCode,
		logger:  params.Logger,
	}
}

func (srv *shareCodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleBlogEvent renders the share code of a published post and removes it
// once the post is unpublished or deleted.
func (srv *shareCodeService) HandleBlogEvent(ctx context.Context, event *service.BlogEvent) error {
	blogID, err := uuid.Parse(event.BlogID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("event carries an invalid blog id")
	}

	switch event.Type {
	case entity.BlogEventCreated, entity.BlogEventUpdated:
		if event.Published {
			return srv.store(ctx, blogID)
		}

		return srv.remove(ctx, blogID)
	case entity.BlogEventDeleted:
		return srv.remove(ctx, blogID)
	default:
		return domainerrors.ErrValidationFailed.WithDetails("unknown event type " + string(event.Type))
	}
}

func (srv *shareCodeService) store(ctx context.Context, blogID uuid.UUID) error {
	png, err := srv.qrcode.GenerateBlogQR(blogID)
	if err != nil {
		return errors.Wrap(err, "failed to render share code")
	}

	if _, err := srv.storage.Upload(ctx, shareCodeKey(blogID), bytes.NewReader(png), "image/png"); err != nil {
		return errors.Wrap(err, "failed to store share code")
	}

	srv.log(ctx).Info("Share code stored", slog.String("blog_id", blogID.String()))

	return nil
}

func (srv *shareCodeService) remove(ctx context.Context, blogID uuid.UUID) error {
	if err := srv.storage.Delete(ctx, shareCodeKey(blogID)); err != nil {
		return errors.Wrap(err, "failed to remove share code")
	}

	srv.log(ctx).Info("Share code removed", slog.String("blog_id", blogID.String()))

	return nil
}

func shareCodeKey(blogID uuid.UUID) string {
	return shareCodePrefix + blogID.String() + ".png"
}
