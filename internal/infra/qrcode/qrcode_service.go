// Package qrcode renders share codes for blog posts.
package qrcode

import (
	"net/url"
	"path"
	"strings"

	"blog/config"
	"blog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const blogSharePath = "/blog/"

type qrcodeService struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// NewQRCodeService builds the share code renderer from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qc := config.QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	if cfg.QRCode != nil {
		qc = *cfg.QRCode
	}

	return newQRCodeService(qc.Size, qc.ErrorCorrectionLevel, qc.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:    size,
		level:   level,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ShareURL is the public link a share code points at.
func (s *qrcodeService) ShareURL(blogID uuid.UUID) string {
	return s.baseURL + blogSharePath + blogID.String()
}

// GenerateBlogQR returns a PNG encoding the share URL of the post.
func (s *qrcodeService) GenerateBlogQR(blogID uuid.UUID) ([]byte, error) {
	code, err := qrcode.New(s.ShareURL(blogID), s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return png, nil
}

// ParseBlogQR accepts a scanned share URL and returns the post ID. Only the
// path is inspected so links survive a change of host.
func (s *qrcodeService) ParseBlogQR(content string) (uuid.UUID, error) {
	u, err := url.Parse(strings.TrimSpace(content))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code content")
	}

	dir, last := path.Split(strings.TrimRight(u.Path, "/"))
	if !strings.HasSuffix(dir, blogSharePath) {
		return uuid.Nil, errors.Errorf("not a blog share link: %s", content)
	}

	blogID, err := uuid.Parse(last)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse blog ID")
	}

	return blogID, nil
}
