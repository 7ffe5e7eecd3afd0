package catalog

import (
	"strings"

	"github.com/shopcore/catalog/internal/domain/shared"
)

// CategoryHierarchy is the ordered sequence of ancestor category ids
// locating a category within the tree, root first. The empty path is the
// root. Stored as a materialized "/"-joined path for tree queries.
type CategoryHierarchy struct {
	path []CategoryID
}

// NewCategoryHierarchy creates a hierarchy from an ancestor path
func NewCategoryHierarchy(path ...CategoryID) CategoryHierarchy {
	ids := make([]CategoryID, len(path))
	copy(ids, path)
	return CategoryHierarchy{path: ids}
}

// RootHierarchy returns the empty hierarchy
func RootHierarchy() CategoryHierarchy {
	return CategoryHierarchy{}
}

// ParseCategoryHierarchy parses a materialized "/"-joined path
func ParseCategoryHierarchy(materialized string) (CategoryHierarchy, error) {
	if materialized == "" {
		return CategoryHierarchy{}, nil
	}
	parts := strings.Split(materialized, "/")
	path := make([]CategoryID, 0, len(parts))
	for _, part := range parts {
		id, err := ParseCategoryID(part)
		if err != nil {
			return CategoryHierarchy{}, shared.NewValidationError("Invalid category hierarchy path")
		}
		path = append(path, id)
	}
	return CategoryHierarchy{path: path}, nil
}

// Path returns a copy of the ancestor ids, root first
func (h CategoryHierarchy) Path() []CategoryID {
	ids := make([]CategoryID, len(h.path))
	copy(ids, h.path)
	return ids
}

// Level returns the depth of the hierarchy (path length)
func (h CategoryHierarchy) Level() int {
	return len(h.path)
}

// IsRoot returns true if the path is empty
func (h CategoryHierarchy) IsRoot() bool {
	return len(h.path) == 0
}

// IsDescendantOf returns true iff other's path is a strict, positionally
// equal prefix of this path.
func (h CategoryHierarchy) IsDescendantOf(other CategoryHierarchy) bool {
	if len(other.path) >= len(h.path) {
		return false
	}
	for i, id := range other.path {
		if h.path[i] != id {
			return false
		}
	}
	return true
}

// Child returns a new hierarchy one level deeper, ending in id
func (h CategoryHierarchy) Child(id CategoryID) CategoryHierarchy {
	path := make([]CategoryID, 0, len(h.path)+1)
	path = append(path, h.path...)
	path = append(path, id)
	return CategoryHierarchy{path: path}
}

// Equals returns true if both hierarchies have the same path
func (h CategoryHierarchy) Equals(other CategoryHierarchy) bool {
	if len(h.path) != len(other.path) {
		return false
	}
	for i, id := range h.path {
		if other.path[i] != id {
			return false
		}
	}
	return true
}

// String returns the materialized "/"-joined path
func (h CategoryHierarchy) String() string {
	if len(h.path) == 0 {
		return ""
	}
	parts := make([]string, len(h.path))
	for i, id := range h.path {
		parts[i] = id.String()
	}
	return strings.Join(parts, "/")
}
