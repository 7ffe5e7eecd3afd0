package shared

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	aggregateID := uuid.New()
	event := NewBaseDomainEvent("PriceUpdated", "CatalogItem", aggregateID)
	payload := []byte(`{"new_price":"12.50"}`)

	row := NewOutboxEvent(&event, payload)

	assert.NotEqual(t, uuid.Nil, row.ID)
	assert.NotEqual(t, event.EventID(), row.ID)
	assert.Equal(t, event.EventID(), row.EventID)
	assert.Equal(t, "PriceUpdated", row.EventType)
	assert.Equal(t, aggregateID, row.AggregateID)
	assert.Equal(t, "CatalogItem", row.AggregateType)
	assert.Equal(t, payload, row.EventData)
	assert.Equal(t, OutboxStatusPending, row.Status)
	assert.Equal(t, event.OccurredAt(), row.CreatedAt)
	assert.Nil(t, row.ProcessedAt)
	assert.True(t, row.IsPending())
}

func TestOutboxEventTransitions(t *testing.T) {
	t.Run("mark published", func(t *testing.T) {
		event := NewBaseDomainEvent("ItemUpdated", "CatalogItem", uuid.New())
		row := NewOutboxEvent(&event, []byte(`{}`))

		row.MarkPublished()

		assert.Equal(t, OutboxStatusPublished, row.Status)
		require.NotNil(t, row.ProcessedAt)
		assert.Empty(t, row.ErrorMessage)
		assert.False(t, row.IsPending())
	})

	t.Run("mark failed records the error", func(t *testing.T) {
		event := NewBaseDomainEvent("ItemUpdated", "CatalogItem", uuid.New())
		row := NewOutboxEvent(&event, []byte(`{}`))

		row.MarkFailed("broker unreachable")

		assert.Equal(t, OutboxStatusFailed, row.Status)
		require.NotNil(t, row.ProcessedAt)
		assert.Equal(t, "broker unreachable", row.ErrorMessage)
		assert.False(t, row.IsPending())
	})

	t.Run("publish after failure clears the error", func(t *testing.T) {
		event := NewBaseDomainEvent("ItemUpdated", "CatalogItem", uuid.New())
		row := NewOutboxEvent(&event, []byte(`{}`))

		row.MarkFailed("timeout")
		row.MarkPublished()

		assert.Equal(t, OutboxStatusPublished, row.Status)
		assert.Empty(t, row.ErrorMessage)
	})
}
