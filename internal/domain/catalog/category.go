package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopcore/catalog/internal/domain/shared"
)

// MaxCategoryNameLength is the maximum length of a category name
const MaxCategoryNameLength = 100

// Subcategory is a lightweight entity owned by a Category aggregate
type Subcategory struct {
	ID          CategoryID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Active      bool       `json:"active"`
}

// NewSubcategory creates an active subcategory with a generated id
func NewSubcategory(name, description string) (Subcategory, error) {
	if err := validateCategoryName(name); err != nil {
		return Subcategory{}, err
	}
	return Subcategory{
		ID:          NewCategoryID(),
		Name:        name,
		Description: description,
		Active:      true,
	}, nil
}

// Category is a hierarchical grouping of catalog items and the aggregate
// root for category write operations
type Category struct {
	shared.EventRecorder
	ID            CategoryID    `gorm:"type:uuid;primaryKey"`
	Name          string        `gorm:"type:varchar(100);not null"`
	Path          string        `gorm:"type:varchar(500);not null;index"` // Materialized ancestor path for tree queries
	Subcategories []Subcategory `gorm:"type:jsonb;serializer:json"`
	Active        bool          `gorm:"not null;default:true"`
	CreatedAt     time.Time     `gorm:"not null"`
	UpdatedAt     time.Time     `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Category) TableName() string {
	return "categories"
}

// NewCategory creates a category at the given hierarchy position and emits
// a CategoryCreated event. An empty hierarchy makes a root category.
func NewCategory(name string, hierarchy CategoryHierarchy) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}

	now := time.Now()
	category := &Category{
		EventRecorder: shared.NewEventRecorder(),
		ID:            NewCategoryID(),
		Name:          name,
		Path:          hierarchy.String(),
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	category.AddDomainEvent(NewCategoryCreatedEvent(category))

	return category, nil
}

// NewRootCategory creates a category with an empty hierarchy
func NewRootCategory(name string) (*Category, error) {
	return NewCategory(name, RootHierarchy())
}

// Hierarchy returns the ancestor path as a value object
func (c *Category) Hierarchy() CategoryHierarchy {
	h, err := ParseCategoryHierarchy(c.Path)
	if err != nil {
		return RootHierarchy()
	}
	return h
}

// AddSubcategory registers a subcategory. The subcategory must be active
// and not already present by id. The category's own active flag is not
// checked here; deactivation only marks the category itself.
func (c *Category) AddSubcategory(sub Subcategory) error {
	if !sub.Active {
		return shared.NewValidationError("Cannot add an inactive subcategory")
	}
	for _, existing := range c.Subcategories {
		if existing.ID == sub.ID {
			return shared.NewValidationError("Subcategory is already present")
		}
	}

	c.Subcategories = append(c.Subcategories, sub)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewSubcategoryAddedEvent(c, sub))

	return nil
}

// Deactivate marks the category inactive. This is terminal for write
// operations on the category itself.
func (c *Category) Deactivate() error {
	if !c.Active {
		return shared.NewValidationError("Category is already inactive")
	}

	c.Active = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCategoryDeactivatedEvent(c))

	return nil
}

// IsActive returns true if the category is active
func (c *Category) IsActive() bool {
	return c.Active
}

// IsRoot returns true if the category sits at the top of the tree
func (c *Category) IsRoot() bool {
	return c.Path == ""
}

// GetHierarchyLevel returns the depth of the category in the tree
func (c *Category) GetHierarchyLevel() int {
	return c.Hierarchy().Level()
}

// IsDescendantOf returns true if this category's ancestor path extends
// the other's
func (c *Category) IsDescendantOf(other *Category) bool {
	if other == nil {
		return false
	}
	return c.Hierarchy().IsDescendantOf(other.Hierarchy())
}

// GetDescendantIDs returns the identifiers of direct subcategories only.
// Deeper traversal over persisted categories is a repository concern.
func (c *Category) GetDescendantIDs() []CategoryID {
	ids := make([]CategoryID, len(c.Subcategories))
	for i, sub := range c.Subcategories {
		ids[i] = sub.ID
	}
	return ids
}

// FindSubcategory returns the subcategory with the given id, if present
func (c *Category) FindSubcategory(id CategoryID) (Subcategory, bool) {
	for _, sub := range c.Subcategories {
		if sub.ID == id {
			return sub, true
		}
	}
	return Subcategory{}, false
}

// validateCategoryName validates a category or subcategory name
func validateCategoryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewValidationError("Category name cannot be blank")
	}
	if len(name) > MaxCategoryNameLength {
		return shared.NewValidationError(fmt.Sprintf("Category name cannot exceed %d characters", MaxCategoryNameLength))
	}
	return nil
}
