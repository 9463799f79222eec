package usecase

import (
	"context"
	"io"

	"blog/internal/domain/entity"
)

// UploadPhotoInput is a single file taken from a multipart form.
type UploadPhotoInput struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// PhotoUsecase stores user photos in the object store.
type PhotoUsecase interface {
	Upload(ctx context.Context, principal *entity.Principal, input UploadPhotoInput) (*entity.Photo, error)
}
