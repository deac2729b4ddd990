package service

import (
	"context"

	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/pkg/events"
)

// eventDispatcher publishes domain events after the state change committed.
// Publishing failures are logged and never surface to the caller.
type eventDispatcher struct {
	publisher events.Publisher
	logger    logger.ILogger
}

func newEventDispatcher(publisher events.Publisher, log logger.ILogger) *eventDispatcher {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &eventDispatcher{publisher: publisher, logger: log}
}

func (d *eventDispatcher) dispatch(ctx context.Context, event events.Event) {
	if err := d.publisher.Publish(ctx, event); err != nil {
		d.logger.Warn("EVENTS", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}
