package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shopcore/catalog/internal/domain/catalog"
	"github.com/shopcore/catalog/internal/domain/shared"
)

// CategoryService handles category business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create creates a category. With a parent id the new category is placed
// one level below the parent; without one it becomes a root category.
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	hierarchy := catalog.RootHierarchy()
	if req.ParentID != nil {
		parentID := catalog.CategoryIDFromUUID(*req.ParentID)
		parent, err := s.categoryRepo.FindByID(ctx, parentID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewValidationError("Parent category not found")
			}
			return nil, err
		}
		if !parent.IsActive() {
			return nil, shared.NewValidationError("Parent category is inactive")
		}
		hierarchy = parent.Hierarchy().Child(parent.ID)
	}

	category, err := catalog.NewCategory(req.Name, hierarchy)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	category.ClearDomainEvents()

	s.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("name", category.Name),
		zap.Int("level", category.GetHierarchyLevel()),
	)

	response := ToCategoryResponse(category)
	return &response, nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id catalog.CategoryID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Category not found")
		}
		return nil, err
	}

	response := ToCategoryResponse(category)
	return &response, nil
}

// List retrieves all categories, optionally only the active ones
func (s *CategoryService) List(ctx context.Context, activeOnly bool) ([]CategoryResponse, error) {
	var (
		categories []catalog.Category
		err        error
	)
	if activeOnly {
		categories, err = s.categoryRepo.FindActive(ctx)
	} else {
		categories, err = s.categoryRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return ToCategoryResponses(categories), nil
}

// AddSubcategory registers a new subcategory on a category
func (s *CategoryService) AddSubcategory(ctx context.Context, id catalog.CategoryID, req AddSubcategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Category not found")
		}
		return nil, err
	}

	sub, err := catalog.NewSubcategory(req.Name, req.Description)
	if err != nil {
		return nil, err
	}
	if err := category.AddSubcategory(sub); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	category.ClearDomainEvents()

	response := ToCategoryResponse(category)
	return &response, nil
}

// Deactivate marks a category inactive
func (s *CategoryService) Deactivate(ctx context.Context, id catalog.CategoryID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Category not found")
		}
		return nil, err
	}

	if err := category.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	category.ClearDomainEvents()

	s.logger.Info("Category deactivated", zap.String("category_id", category.ID.String()))

	response := ToCategoryResponse(category)
	return &response, nil
}
