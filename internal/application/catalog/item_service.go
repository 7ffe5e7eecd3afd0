package catalog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/shopcore/catalog/internal/domain/catalog"
	"github.com/shopcore/catalog/internal/domain/shared"
	"github.com/shopcore/catalog/internal/domain/shared/valueobject"
)

// ItemService handles catalog item business operations. Every mutation goes
// through the aggregate, is persisted together with its outbox rows, and
// then refreshes the search projection for the item.
type ItemService struct {
	itemRepo     catalog.CatalogItemRepository
	categoryRepo catalog.CategoryRepository
	indexRepo    catalog.ProductIndexRepository
	logger       *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(
	itemRepo catalog.CatalogItemRepository,
	categoryRepo catalog.CategoryRepository,
	indexRepo catalog.ProductIndexRepository,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		indexRepo:    indexRepo,
		logger:       logger,
	}
}

// Create creates a new catalog item
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	name, err := catalog.NewProductName(req.Name)
	if err != nil {
		return nil, err
	}
	description, err := catalog.NewProductDescription(req.Description)
	if err != nil {
		return nil, err
	}
	price, err := valueobject.NewPrice(req.Price)
	if err != nil {
		return nil, err
	}
	brand, err := catalog.NewBrand(req.Brand)
	if err != nil {
		return nil, err
	}
	sku, err := catalog.NewSKU(req.SKU)
	if err != nil {
		return nil, err
	}

	exists, err := s.itemRepo.ExistsBySKU(ctx, sku.String())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError(shared.CodeConflict, "Item with this SKU already exists")
	}

	categoryID := catalog.CategoryIDFromUUID(req.CategoryID)
	if err := s.requireActiveCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	item, err := catalog.NewCatalogItem(categoryID, name, description, price, brand, sku)
	if err != nil {
		return nil, err
	}

	for _, input := range req.Attributes {
		attr, err := catalog.NewAttribute(input.Name, input.Value, input.Type)
		if err != nil {
			return nil, err
		}
		item.AddAttribute(attr)
	}

	if err := s.saveAndReindex(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Catalog item created",
		zap.String("item_id", item.ID.String()),
		zap.String("sku", item.SKU),
	)

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves a catalog item by ID
func (s *ItemService) GetByID(ctx context.Context, id catalog.ProductID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Catalog item not found")
		}
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetBySKU retrieves a catalog item by SKU
func (s *ItemService) GetBySKU(ctx context.Context, sku string) (*ItemResponse, error) {
	item, err := s.itemRepo.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Catalog item not found")
		}
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves all catalog items
func (s *ItemService) List(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}

// UpdateDetails changes name and/or description
func (s *ItemService) UpdateDetails(ctx context.Context, id catalog.ProductID, req UpdateItemDetailsRequest) (*ItemResponse, error) {
	var name *catalog.ProductName
	if req.Name != nil {
		n, err := catalog.NewProductName(*req.Name)
		if err != nil {
			return nil, err
		}
		name = &n
	}
	var description *catalog.ProductDescription
	if req.Description != nil {
		d, err := catalog.NewProductDescription(*req.Description)
		if err != nil {
			return nil, err
		}
		description = &d
	}

	return s.mutate(ctx, id, func(item *catalog.CatalogItem) error {
		item.UpdateDetails(name, description)
		return nil
	})
}

// UpdatePrice changes the item's price
func (s *ItemService) UpdatePrice(ctx context.Context, id catalog.ProductID, req UpdateItemPriceRequest) (*ItemResponse, error) {
	price, err := valueobject.NewPrice(req.Price)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, func(item *catalog.CatalogItem) error {
		return item.UpdatePrice(price)
	})
}

// UpdateStock sets the item's stock quantity
func (s *ItemService) UpdateStock(ctx context.Context, id catalog.ProductID, req UpdateItemStockRequest) (*ItemResponse, error) {
	return s.mutate(ctx, id, func(item *catalog.CatalogItem) error {
		return item.UpdateStock(req.Quantity)
	})
}

// ChangeCategory moves the item to another category
func (s *ItemService) ChangeCategory(ctx context.Context, id catalog.ProductID, req ChangeItemCategoryRequest) (*ItemResponse, error) {
	categoryID := catalog.CategoryIDFromUUID(req.CategoryID)
	if err := s.requireActiveCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, func(item *catalog.CatalogItem) error {
		return item.ChangeCategory(categoryID)
	})
}

// Hide makes the item invisible to the storefront
func (s *ItemService) Hide(ctx context.Context, id catalog.ProductID) (*ItemResponse, error) {
	return s.mutate(ctx, id, func(item *catalog.CatalogItem) error {
		item.Hide()
		return nil
	})
}

// Show makes the item visible to the storefront
func (s *ItemService) Show(ctx context.Context, id catalog.ProductID) (*ItemResponse, error) {
	return s.mutate(ctx, id, func(item *catalog.CatalogItem) error {
		item.Show()
		return nil
	})
}

// AddAttribute appends an attribute to the item
func (s *ItemService) AddAttribute(ctx context.Context, id catalog.ProductID, input AttributeInput) (*ItemResponse, error) {
	attr, err := catalog.NewAttribute(input.Name, input.Value, input.Type)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, id, func(item *catalog.CatalogItem) error {
		item.AddAttribute(attr)
		return nil
	})
}

// RemoveAttribute removes the named attribute from the item
func (s *ItemService) RemoveAttribute(ctx context.Context, id catalog.ProductID, name string) (*ItemResponse, error) {
	return s.mutate(ctx, id, func(item *catalog.CatalogItem) error {
		return item.RemoveAttribute(name)
	})
}

// Delete removes the item and its search projection
func (s *ItemService) Delete(ctx context.Context, id catalog.ProductID) error {
	deleted, err := s.itemRepo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return shared.NewNotFoundError("Catalog item not found")
	}

	if _, err := s.indexRepo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("Failed to delete product index",
			zap.Error(err),
			zap.String("item_id", id.String()),
		)
		return err
	}

	s.logger.Info("Catalog item deleted", zap.String("item_id", id.String()))
	return nil
}

// mutate loads the item, applies the change, persists it with its events and
// refreshes the projection
func (s *ItemService) mutate(ctx context.Context, id catalog.ProductID, change func(*catalog.CatalogItem) error) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("Catalog item not found")
		}
		return nil, err
	}

	if err := change(item); err != nil {
		return nil, err
	}

	if err := s.saveAndReindex(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// saveAndReindex persists the aggregate together with its outbox rows,
// clears the event buffer only on success, then upserts the projection
func (s *ItemService) saveAndReindex(ctx context.Context, item *catalog.CatalogItem) error {
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return err
	}
	item.ClearDomainEvents()

	index, err := s.indexRepo.FindByID(ctx, item.ID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		index = catalog.NewProductIndexFrom(item)
	} else {
		index.UpdateFrom(item)
	}

	if err := s.indexRepo.Save(ctx, index); err != nil {
		s.logger.Error("Failed to refresh product index",
			zap.Error(err),
			zap.String("item_id", item.ID.String()),
		)
		return err
	}
	return nil
}

// requireActiveCategory validates that the target category exists and is
// active
func (s *ItemService) requireActiveCategory(ctx context.Context, id catalog.CategoryID) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewValidationError("Category not found")
		}
		return err
	}
	if !category.IsActive() {
		return shared.NewValidationError("Category is inactive")
	}
	return nil
}
