package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"path"
	"strings"
	"time"

	"blog/config"
	deliverycontext "blog/internal/delivery/context"
	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/domain/service"
	"blog/internal/usecase"
	"blog/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPhotoContentType = "application/octet-stream"
	maxPhotoFilenameLength  = 100
)

// photoService implements the PhotoUsecase interface.
type photoService struct {
	storage   service.PhotoStorage
	maxSize   int64
	signedTTL time.Duration
	logger    *slog.Logger
	newID     func() uuid.UUID
}

// PhotoServiceParams holds dependencies for PhotoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	Storage service.PhotoStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewPhotoService is the constructor for photoService.
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	srv := &photoService{
		storage: params.Storage,
		logger:  params.Logger,
		newID:   uuid.New,
	}
	if cfg := params.Config.Storage; cfg != nil {
		srv.maxSize = cfg.MaxUploadSize
		srv.signedTTL = cfg.SignedURLTTL
	}

	return srv
}

func (srv *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload streams the file into the caller's folder of the photo bucket and
// returns a link to it.
func (srv *photoService) Upload(ctx context.Context, principal *entity.Principal, input usecase.UploadPhotoInput) (*entity.Photo, error) {
	if principal == nil || principal.Subject == "" {
		return nil, domainerrors.ErrTokenMissing
	}
	if input.Content == nil || input.Size <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file must not be empty")
	}
	if srv.maxSize > 0 && input.Size > srv.maxSize {
		return nil, domainerrors.ErrValidationFailed.WithDetails("file exceeds the upload size limit of " + util.HumanSize(srv.maxSize))
	}

	contentType := input.ContentType
	if contentType == "" {
		contentType = defaultPhotoContentType
	}

	key := photoKey(principal.Subject, srv.newID(), input.Filename)

	written, err := srv.storage.Upload(ctx, key, input.Content, contentType)
	if err != nil {
		srv.log(ctx).Error("Failed to store photo", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upload photo")
	}

	link, err := srv.storage.URL(ctx, key, srv.signedTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build photo url")
	}

	srv.log(ctx).Info("Photo uploaded", slog.String("key", key), slog.Int64("size", written))

	return &entity.Photo{
		Key:         key,
		URL:         link,
		ContentType: contentType,
		Size:        written,
	}, nil
}

// photoKey groups uploads by a digest of the owner's email so the address
// itself never shows up in object names.
func photoKey(subject string, id uuid.UUID, filename string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(subject)))

	return hex.EncodeToString(sum[:8]) + "/" + id.String() + "-" + sanitizeFilename(filename)
}

func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	clean := strings.Trim(b.String(), "._")
	if clean == "" {
		return "photo"
	}
	if len(clean) > maxPhotoFilenameLength {
		clean = clean[len(clean)-maxPhotoFilenameLength:]
	}

	return clean
}
