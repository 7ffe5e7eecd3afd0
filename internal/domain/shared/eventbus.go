package shared

import "context"

// OutboxEventSaver converts buffered domain events into outbox rows within
// the transaction that persists the owning aggregate. Repository adapters
// call it so that state-write and outbox-write commit or fail together.
type OutboxEventSaver interface {
	// SaveEvents saves domain events to the outbox table within the current
	// transaction. The txProvider is adapter-specific (a *gorm.DB here).
	SaveEvents(ctx context.Context, txProvider interface{}, events ...DomainEvent) error
}

// EventPublisher publishes domain events to in-process subscribers. It is
// a secondary channel next to the outbox; delivery is best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}
