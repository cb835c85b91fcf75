package builder

import (
	"context"

	"github.com/alexisbeaulieu97/chartbuilder/internal/ports"
)

func publishEvent(ctx context.Context, publisher ports.EventPublisher, logger ports.Logger, eventType string, payload map[string]interface{}) {
	if publisher == nil {
		return
	}
	event := ports.Event{Type: eventType, Fields: payload}
	if err := publisher.Publish(ctx, event); err != nil && logger != nil {
		logger.Warn(ctx, "failed to publish builder event", "event_type", eventType, "error", err)
	}
}
