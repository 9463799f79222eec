package handler

import (
	"log/slog"
	"net/http"

	"blog/internal/delivery/api/response"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const photoFormField = "file"

// PhotoHandlerParams holds dependencies for PhotoHandler, injected by Fx.
type PhotoHandlerParams struct {
	fx.In

	PhotoUC usecase.PhotoUsecase
	Logger  *slog.Logger
}

// PhotoHandler serves photo uploads.
type PhotoHandler struct {
	photoUC usecase.PhotoUsecase
	logger  *slog.Logger
}

// NewPhotoHandler is the constructor for PhotoHandler.
func NewPhotoHandler(params PhotoHandlerParams) *PhotoHandler {
	return &PhotoHandler{
		photoUC: params.PhotoUC,
		logger:  params.Logger,
	}
}

// PhotoResponse describes a stored photo.
type PhotoResponse struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Upload stores the multipart "file" field in the photo bucket.
func (h *PhotoHandler) Upload(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile(photoFormField)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("multipart field \"file\" is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	photo, err := h.photoUC.Upload(c.Request().Context(), principal, usecase.UploadPhotoInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, PhotoResponse{
		Key:         photo.Key,
		URL:         photo.URL,
		Size:        photo.Size,
		ContentType: photo.ContentType,
	})
}
