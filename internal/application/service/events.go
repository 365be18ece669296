package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ContentEventType string

const (
	ContentCreated ContentEventType = "content.created"
	ContentUpdated ContentEventType = "content.updated"
	ContentDeleted ContentEventType = "content.deleted"
)

// ContentEvent announces a change to a portfolio record, e.g. so a static
// front end can rebuild.
type ContentEvent struct {
	EventType  ContentEventType `json:"event_type"`
	Resource   string           `json:"resource"`
	ResourceID int64            `json:"resource_id"`
	OccurredAt time.Time        `json:"occurred_at"`
}

const ContactReceived = "contact.received"

type ContactEvent struct {
	EventType  string    `json:"event_type"`
	MessageID  int64     `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	PublishContentEvent(ctx context.Context, evt ContentEvent) error
	PublishContactEvent(ctx context.Context, evt ContactEvent) error
}

// NotifyContentChange publishes in the background. A failed publish never
// affects the request that caused it.
func NotifyContentChange(pub EventPublisher, log logger.Logger, typ ContentEventType, resource string, id int64) {
	evt := ContentEvent{EventType: typ, Resource: resource, ResourceID: id, OccurredAt: time.Now().UTC()}
	go func() {
		if err := pub.PublishContentEvent(context.Background(), evt); err != nil {
			log.Error("Failed to publish content event", err,
				zap.String("event_type", string(typ)),
				zap.String("resource", resource),
				zap.Int64("resource_id", id),
			)
		}
	}()
}
