package event

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/shopcore/catalog/internal/domain/catalog"
	"github.com/shopcore/catalog/internal/domain/shared"
)

// EventSerializer handles JSON serialization of domain events. Payloads are
// a stable contract: the embedded envelope plus the event's own fields.
type EventSerializer struct {
	mu       sync.RWMutex
	registry map[string]reflect.Type // eventType -> Go type
}

// NewEventSerializer creates an empty event serializer
func NewEventSerializer() *EventSerializer {
	return &EventSerializer{
		registry: make(map[string]reflect.Type),
	}
}

// NewCatalogEventSerializer creates a serializer with every catalog event
// type registered
func NewCatalogEventSerializer() *EventSerializer {
	s := NewEventSerializer()
	s.Register(catalog.EventTypeProductIndexed, &catalog.ProductIndexedEvent{})
	s.Register(catalog.EventTypePriceUpdated, &catalog.PriceUpdatedEvent{})
	s.Register(catalog.EventTypeItemRecategorized, &catalog.ItemRecategorizedEvent{})
	s.Register(catalog.EventTypeItemUpdated, &catalog.ItemUpdatedEvent{})
	s.Register(catalog.EventTypeCategoryCreated, &catalog.CategoryCreatedEvent{})
	s.Register(catalog.EventTypeSubcategoryAdded, &catalog.SubcategoryAddedEvent{})
	s.Register(catalog.EventTypeCategoryDeactivated, &catalog.CategoryDeactivatedEvent{})
	return s
}

// Register registers an event type for deserialization. The eventType must
// match what EventType() returns on the event.
func (s *EventSerializer) Register(eventType string, eventInstance shared.DomainEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := reflect.TypeOf(eventInstance)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s.registry[eventType] = t
}

// Serialize serializes a domain event to JSON bytes
func (s *EventSerializer) Serialize(event shared.DomainEvent) ([]byte, error) {
	return json.Marshal(event)
}

// Deserialize deserializes JSON bytes back to a typed domain event
func (s *EventSerializer) Deserialize(eventType string, data []byte) (shared.DomainEvent, error) {
	s.mu.RLock()
	t, ok := s.registry[eventType]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	eventPtr := reflect.New(t).Interface()
	if err := json.Unmarshal(data, eventPtr); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	event, ok := eventPtr.(shared.DomainEvent)
	if !ok {
		return nil, fmt.Errorf("deserialized object does not implement DomainEvent")
	}

	return event, nil
}

// IsRegistered checks if an event type is registered
func (s *EventSerializer) IsRegistered(eventType string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.registry[eventType]
	return ok
}

// RegisteredTypes returns all registered event types
func (s *EventSerializer) RegisteredTypes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := make([]string, 0, len(s.registry))
	for t := range s.registry {
		types = append(types, t)
	}
	return types
}
