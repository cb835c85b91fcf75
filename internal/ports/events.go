package ports

import "context"

const (
	// EventChartRebuilt is emitted after every successful rebuild.
	EventChartRebuilt = "chart.rebuilt"
	// EventChartCommitted is emitted when an explicit update succeeds.
	EventChartCommitted = "chart.committed"
	// EventCommitRejected is emitted when validation blocks an update.
	EventCommitRejected = "chart.commit_rejected"
	// EventDataReplaced is emitted after a bulk CSV apply or a reset.
	EventDataReplaced = "data.replaced"
	// EventChartExported is emitted after a PNG or CSV export.
	EventChartExported = "chart.exported"
	// EventPanelChanged is emitted when the active panel changes.
	EventPanelChanged = "panel.changed"
)

// DomainEvent represents a significant occurrence within the builder.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish returns after all handlers ran.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are returned
// so publishers can log them and continue delivering.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}

// Event is a simple DomainEvent carrying a field map.
type Event struct {
	Type   string
	Fields map[string]interface{}
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() interface{} { return e.Fields }
