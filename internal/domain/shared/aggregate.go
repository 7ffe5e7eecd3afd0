package shared

// EventRecorder buffers domain events produced by an aggregate during the
// current unit of work. Aggregates embed it by value; the buffer is strictly
// per-instance and in-memory. Losing a non-empty buffer before the events
// have been converted to outbox rows is a data-loss bug, so callers must
// only clear it after a successful persist.
type EventRecorder struct {
	Version      int           `gorm:"not null;default:1"`
	domainEvents []DomainEvent `gorm:"-"`
}

// NewEventRecorder creates a recorder with version 1 and an empty buffer
func NewEventRecorder() EventRecorder {
	return EventRecorder{Version: 1}
}

// AddDomainEvent appends a domain event to the buffer
func (r *EventRecorder) AddDomainEvent(event DomainEvent) {
	r.domainEvents = append(r.domainEvents, event)
}

// DomainEvents returns a snapshot of the buffered events in emission order
func (r *EventRecorder) DomainEvents() []DomainEvent {
	events := make([]DomainEvent, len(r.domainEvents))
	copy(events, r.domainEvents)
	return events
}

// ClearDomainEvents empties the buffer. Call only after the events have
// been durably converted to outbox rows.
func (r *EventRecorder) ClearDomainEvents() {
	r.domainEvents = nil
}

// HasDomainEvents reports whether any events are waiting to be flushed
func (r *EventRecorder) HasDomainEvents() bool {
	return len(r.domainEvents) > 0
}

// GetVersion returns the aggregate version for optimistic locking
func (r *EventRecorder) GetVersion() int {
	return r.Version
}

// IncrementVersion increments the version number
func (r *EventRecorder) IncrementVersion() {
	r.Version++
}
