package usecase

import (
	"context"

	"blog/internal/domain/service"
)

// ShareCodeUsecase keeps a pre-rendered share code in the object store for
// every published post, driven by blog events.
type ShareCodeUsecase interface {
	HandleBlogEvent(ctx context.Context, event *service.BlogEvent) error
}
