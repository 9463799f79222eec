package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders share codes for blog posts.
type QRCodeService interface {
	// GenerateBlogQR returns a PNG encoding the public URL of the post.
	GenerateBlogQR(blogID uuid.UUID) ([]byte, error)

	// ParseBlogQR extracts the blog ID from a scanned share URL.
	ParseBlogQR(content string) (uuid.UUID, error)
}
