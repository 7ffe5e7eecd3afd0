package catalog

import (
	"github.com/shopcore/catalog/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeCategory = "Category"

// Event type constants for categories
const (
	EventTypeCategoryCreated     = "CategoryCreated"
	EventTypeSubcategoryAdded    = "SubcategoryAdded"
	EventTypeCategoryDeactivated = "CategoryDeactivated"
)

// CategoryCreatedEvent is published when a new category is created
type CategoryCreatedEvent struct {
	shared.BaseDomainEvent
	CategoryID CategoryID `json:"category_id"`
	Name       string     `json:"name"`
	Path       string     `json:"path"`
	Level      int        `json:"level"`
}

// NewCategoryCreatedEvent creates a new CategoryCreatedEvent
func NewCategoryCreatedEvent(category *Category) *CategoryCreatedEvent {
	return &CategoryCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryCreated, AggregateTypeCategory, category.ID.UUID()),
		CategoryID:      category.ID,
		Name:            category.Name,
		Path:            category.Path,
		Level:           category.GetHierarchyLevel(),
	}
}

// SubcategoryAddedEvent is published when a subcategory joins a category
type SubcategoryAddedEvent struct {
	shared.BaseDomainEvent
	CategoryID      CategoryID `json:"category_id"`
	SubcategoryID   CategoryID `json:"subcategory_id"`
	SubcategoryName string     `json:"subcategory_name"`
}

// NewSubcategoryAddedEvent creates a new SubcategoryAddedEvent
func NewSubcategoryAddedEvent(category *Category, sub Subcategory) *SubcategoryAddedEvent {
	return &SubcategoryAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSubcategoryAdded, AggregateTypeCategory, category.ID.UUID()),
		CategoryID:      category.ID,
		SubcategoryID:   sub.ID,
		SubcategoryName: sub.Name,
	}
}

// CategoryDeactivatedEvent is published when a category is deactivated
type CategoryDeactivatedEvent struct {
	shared.BaseDomainEvent
	CategoryID CategoryID `json:"category_id"`
	Name       string     `json:"name"`
}

// NewCategoryDeactivatedEvent creates a new CategoryDeactivatedEvent
func NewCategoryDeactivatedEvent(category *Category) *CategoryDeactivatedEvent {
	return &CategoryDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCategoryDeactivated, AggregateTypeCategory, category.ID.UUID()),
		CategoryID:      category.ID,
		Name:            category.Name,
	}
}
