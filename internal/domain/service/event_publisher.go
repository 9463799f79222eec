package service

import (
	"context"
	"time"

	"blog/internal/domain/entity"
)

// BlogEvent is emitted after a blog post changes.
type BlogEvent struct {
	RequestID  string               `json:"request_id,omitempty"` // For distributed tracing
	EventID    string               `json:"event_id"`
	Type       entity.BlogEventType `json:"type"`
	BlogID     string               `json:"blog_id"`
	AuthorID   string               `json:"author_id"`
	Title      string               `json:"title,omitempty"`
	Published  bool                 `json:"published"`
	OccurredAt time.Time            `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishBlogEvent delivers a blog event to subscribers
	PublishBlogEvent(ctx context.Context, event *BlogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
