package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus represents the publication status of an outbox event
type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "PENDING"
	OutboxStatusPublished OutboxStatus = "PUBLISHED"
	OutboxStatusFailed    OutboxStatus = "FAILED"
)

// OutboxEvent is the durable representation of a domain event awaiting
// publication. Rows are written in the same transaction as the aggregate
// state they describe; only the relay transitions Status afterwards.
type OutboxEvent struct {
	ID            uuid.UUID    `gorm:"type:uuid;primaryKey"`
	EventID       uuid.UUID    `gorm:"type:uuid;not null;index"`
	EventType     string       `gorm:"type:varchar(100);not null"`
	AggregateID   uuid.UUID    `gorm:"type:uuid;not null;index"`
	AggregateType string       `gorm:"type:varchar(100);not null"`
	EventData     []byte       `gorm:"type:jsonb;not null"`
	Status        OutboxStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedAt     time.Time    `gorm:"not null;index"`
	ProcessedAt   *time.Time
	ErrorMessage  string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (OutboxEvent) TableName() string {
	return "outbox_events"
}

// NewOutboxEvent creates a PENDING outbox row for a domain event. The row
// gets a freshly generated id distinct from the event's own id, and carries
// the event's timestamp as CreatedAt so relay ordering follows emission
// order.
func NewOutboxEvent(event DomainEvent, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		ID:            uuid.New(),
		EventID:       event.EventID(),
		EventType:     event.EventType(),
		AggregateID:   event.AggregateID(),
		AggregateType: event.AggregateType(),
		EventData:     payload,
		Status:        OutboxStatusPending,
		CreatedAt:     event.OccurredAt(),
	}
}

// MarkPublished records a successful publish. Driven by the relay, never by
// the domain layer.
func (e *OutboxEvent) MarkPublished() {
	now := time.Now()
	e.Status = OutboxStatusPublished
	e.ProcessedAt = &now
	e.ErrorMessage = ""
}

// MarkFailed records a failed publish attempt with the relay's error
func (e *OutboxEvent) MarkFailed(errMsg string) {
	now := time.Now()
	e.Status = OutboxStatusFailed
	e.ProcessedAt = &now
	e.ErrorMessage = errMsg
}

// IsPending reports whether the event still awaits publication
func (e *OutboxEvent) IsPending() bool {
	return e.Status == OutboxStatusPending
}

// OutboxRepository defines the persistence contract for outbox events
type OutboxRepository interface {
	// Save persists one or more outbox events
	Save(ctx context.Context, events ...*OutboxEvent) error
	// FindByID retrieves a single outbox event
	FindByID(ctx context.Context, id uuid.UUID) (*OutboxEvent, error)
	// FindPending retrieves pending events in created_at order
	FindPending(ctx context.Context, limit int) ([]*OutboxEvent, error)
	// FindByStatus retrieves events with the given status, paginated
	FindByStatus(ctx context.Context, status OutboxStatus, page, pageSize int) ([]*OutboxEvent, int64, error)
	// FindByAggregate retrieves all events for an aggregate in created_at order
	FindByAggregate(ctx context.Context, aggregateID uuid.UUID) ([]*OutboxEvent, error)
	// Update updates an existing outbox event
	Update(ctx context.Context, event *OutboxEvent) error
	// CountByStatus returns the number of events per status
	CountByStatus(ctx context.Context) (map[OutboxStatus]int64, error)
}
