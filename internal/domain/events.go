package domain

import (
	"context"
	"time"
)

type Event struct {
	Type       string
	OccurredAt time.Time
	Payload    map[string]any
}

// EventBus delivers events out of band. Publish must not block the caller
// on slow sinks.
type EventBus interface {
	Publish(ctx context.Context, e Event)
}
