package event

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopcore/catalog/internal/domain/shared"
)

// OutboxService exposes the read surface over the outbox table: statistics,
// pending backlog and per-event lookups. Writing rows stays with the
// repositories; transitioning them stays with the relay.
type OutboxService struct {
	repo   shared.OutboxRepository
	logger *zap.Logger
}

// NewOutboxService creates a new outbox service
func NewOutboxService(repo shared.OutboxRepository, logger *zap.Logger) *OutboxService {
	return &OutboxService{
		repo:   repo,
		logger: logger,
	}
}

// OutboxEventDTO represents an outbox event data transfer object
type OutboxEventDTO struct {
	ID            uuid.UUID  `json:"id"`
	EventID       uuid.UUID  `json:"event_id"`
	EventType     string     `json:"event_type"`
	AggregateID   uuid.UUID  `json:"aggregate_id"`
	AggregateType string     `json:"aggregate_type"`
	Status        string     `json:"status"`
	ErrorMessage  string     `json:"error_message,omitempty"`
	ProcessedAt   *time.Time `json:"processed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// OutboxFilter represents filter options for querying outbox events
type OutboxFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=PENDING PUBLISHED FAILED"`
	Page     int    `form:"page,omitempty" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size,omitempty" binding:"omitempty,min=1,max=100"`
}

// OutboxListResult represents a paginated outbox event list
type OutboxListResult struct {
	Events     []OutboxEventDTO `json:"events"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
}

// OutboxStatsDTO represents outbox statistics per status
type OutboxStatsDTO struct {
	Pending   int64 `json:"pending"`
	Published int64 `json:"published"`
	Failed    int64 `json:"failed"`
	Total     int64 `json:"total"`
}

// GetByStatus retrieves outbox events with the given status, paginated
func (s *OutboxService) GetByStatus(ctx context.Context, filter OutboxFilter) (*OutboxListResult, error) {
	status := shared.OutboxStatus(filter.Status)
	if status == "" {
		status = shared.OutboxStatusPending
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}

	events, total, err := s.repo.FindByStatus(ctx, status, page, pageSize)
	if err != nil {
		s.logger.Error("Failed to find outbox events", zap.Error(err), zap.String("status", string(status)))
		return nil, shared.NewDomainError(shared.CodeInternal, "Failed to retrieve outbox events")
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	dtos := make([]OutboxEventDTO, len(events))
	for i, event := range events {
		dtos[i] = toOutboxEventDTO(event)
	}

	return &OutboxListResult{
		Events:     dtos,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// GetPending retrieves the oldest pending events up to limit
func (s *OutboxService) GetPending(ctx context.Context, limit int) ([]OutboxEventDTO, error) {
	if limit < 1 {
		limit = 100
	}

	events, err := s.repo.FindPending(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to find pending outbox events", zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Failed to retrieve pending events")
	}

	dtos := make([]OutboxEventDTO, len(events))
	for i, event := range events {
		dtos[i] = toOutboxEventDTO(event)
	}
	return dtos, nil
}

// GetEvent retrieves a single outbox event by ID
func (s *OutboxService) GetEvent(ctx context.Context, id uuid.UUID) (*OutboxEventDTO, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewNotFoundError("Outbox event not found")
	}

	dto := toOutboxEventDTO(event)
	return &dto, nil
}

// GetByAggregate retrieves all outbox events for an aggregate in emission
// order
func (s *OutboxService) GetByAggregate(ctx context.Context, aggregateID uuid.UUID) ([]OutboxEventDTO, error) {
	events, err := s.repo.FindByAggregate(ctx, aggregateID)
	if err != nil {
		s.logger.Error("Failed to find outbox events for aggregate",
			zap.Error(err),
			zap.String("aggregate_id", aggregateID.String()),
		)
		return nil, shared.NewDomainError(shared.CodeInternal, "Failed to retrieve outbox events")
	}

	dtos := make([]OutboxEventDTO, len(events))
	for i, event := range events {
		dtos[i] = toOutboxEventDTO(event)
	}
	return dtos, nil
}

// GetStats returns outbox statistics
func (s *OutboxService) GetStats(ctx context.Context) (*OutboxStatsDTO, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		s.logger.Error("Failed to get outbox stats", zap.Error(err))
		return nil, shared.NewDomainError(shared.CodeInternal, "Failed to get outbox stats")
	}

	var total int64
	for _, count := range counts {
		total += count
	}

	return &OutboxStatsDTO{
		Pending:   counts[shared.OutboxStatusPending],
		Published: counts[shared.OutboxStatusPublished],
		Failed:    counts[shared.OutboxStatusFailed],
		Total:     total,
	}, nil
}

// toOutboxEventDTO converts a domain OutboxEvent to its DTO
func toOutboxEventDTO(event *shared.OutboxEvent) OutboxEventDTO {
	return OutboxEventDTO{
		ID:            event.ID,
		EventID:       event.EventID,
		EventType:     event.EventType,
		AggregateID:   event.AggregateID,
		AggregateType: event.AggregateType,
		Status:        string(event.Status),
		ErrorMessage:  event.ErrorMessage,
		ProcessedAt:   event.ProcessedAt,
		CreatedAt:     event.CreatedAt,
	}
}
