package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/shopcore/catalog/internal/application/catalog"
	"github.com/shopcore/catalog/internal/domain/catalog"
)

// ItemHandler handles catalog item API endpoints
type ItemHandler struct {
	BaseHandler
	itemService *catalogapp.ItemService
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *catalogapp.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// parseItemID parses the :id path parameter, writing a 400 on failure
func (h *ItemHandler) parseItemID(c *gin.Context) (catalog.ProductID, bool) {
	id, err := catalog.ParseProductID(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return catalog.ProductID{}, false
	}
	return id, true
}

// Create godoc
// @Summary      Create a catalog item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateItemRequest true "Item creation request"
// @Success      201 {object} dto.Response{data=catalogapp.ItemResponse}
// @Router       /catalog/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	var req catalogapp.CreateItemRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// GetByID godoc
// @Summary      Get a catalog item by ID
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ItemResponse}
// @Router       /catalog/items/{id} [get]
func (h *ItemHandler) GetByID(c *gin.Context) {
	id, ok := h.parseItemID(c)
	if !ok {
		return
	}

	item, err := h.itemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// GetBySKU godoc
// @Summary      Get a catalog item by SKU
// @Tags         items
// @Produce      json
// @Param        sku path string true "Item SKU"
// @Success      200 {object} dto.Response{data=catalogapp.ItemResponse}
// @Router       /catalog/items/sku/{sku} [get]
func (h *ItemHandler) GetBySKU(c *gin.Context) {
	item, err := h.itemService.GetBySKU(c.Request.Context(), c.Param("sku"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// List godoc
// @Summary      List catalog items
// @Tags         items
// @Produce      json
// @Success      200 {object} dto.Response{data=[]catalogapp.ItemResponse}
// @Router       /catalog/items [get]
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.itemService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, items)
}

// UpdateDetails godoc
// @Summary      Update item name and/or description
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Param        request body catalogapp.UpdateItemDetailsRequest true "Fields to update"
// @Success      200 {object} dto.Response{data=catalogapp.ItemResponse}
// @Router       /catalog/items/{id} [patch]
func (h *ItemHandler) UpdateDetails(c *gin.Context) {
	id, ok := h.parseItemID(c)
	if !ok {
		return
	}

	var req catalogapp.UpdateItemDetailsRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.UpdateDetails(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// UpdatePrice godoc
// @Summary      Update item price
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Param        request body catalogapp.UpdateItemPriceRequest true "New price"
// @Success      200 {object} dto.Response{data=catalogapp.ItemResponse}
// @Router       /catalog/items/{id}/price [put]
func (h *ItemHandler) UpdatePrice(c *gin.Context) {
	id, ok := h.parseItemID(c)
	if !ok {
		return
	}

	var req catalogapp.UpdateItemPriceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.UpdatePrice(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// UpdateStock godoc
// @Summary      Update item stock quantity
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Param        request body catalogapp.UpdateItemStockRequest true "New stock quantity"
// @Success      200 {object} dto.Response{data=catalogapp.ItemResponse}
// @Router       /catalog/items/{id}/stock [put]
func (h *ItemHandler) UpdateStock(c *gin.Context) {
	id, ok := h.parseItemID(c)
	if !ok {
		return
	}

	var req catalogapp.UpdateItemStockRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.UpdateStock(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// ChangeCategory godoc
// @Summary      Move an item to another category
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Param        request body catalogapp.ChangeItemCategoryRequest true "Target category"
// @Success      200 {object} dto.Response{data=catalogapp.ItemResponse}
// @Router       /catalog/items/{id}/category [put]
func (h *ItemHandler) ChangeCategory(c *gin.Context) {
	id, ok := h.parseItemID(c)
	if !ok {
		return
	}

	var req catalogapp.ChangeItemCategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.ChangeCategory(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Hide godoc
// @Summary      Hide an item from the storefront
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ItemResponse}
// @Router       /catalog/items/{id}/hide [post]
func (h *ItemHandler) Hide(c *gin.Context) {
	id, ok := h.parseItemID(c)
	if !ok {
		return
	}

	item, err := h.itemService.Hide(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Show godoc
// @Summary      Make an item visible on the storefront
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.ItemResponse}
// @Router       /catalog/items/{id}/show [post]
func (h *ItemHandler) Show(c *gin.Context) {
	id, ok := h.parseItemID(c)
	if !ok {
		return
	}

	item, err := h.itemService.Show(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// AddAttribute godoc
// @Summary      Add an attribute to an item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Param        request body catalogapp.AttributeInput true "Attribute to add"
// @Success      200 {object} dto.Response{data=catalogapp.ItemResponse}
// @Router       /catalog/items/{id}/attributes [post]
func (h *ItemHandler) AddAttribute(c *gin.Context) {
	id, ok := h.parseItemID(c)
	if !ok {
		return
	}

	var req catalogapp.AttributeInput
	if !h.bindJSON(c, &req) {
		return
	}

	item, err := h.itemService.AddAttribute(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// RemoveAttribute godoc
// @Summary      Remove an attribute from an item
// @Tags         items
// @Produce      json
// @Param        id path string true "Item ID" format(uuid)
// @Param        name path string true "Attribute name"
// @Success      200 {object} dto.Response{data=catalogapp.ItemResponse}
// @Router       /catalog/items/{id}/attributes/{name} [delete]
func (h *ItemHandler) RemoveAttribute(c *gin.Context) {
	id, ok := h.parseItemID(c)
	if !ok {
		return
	}

	item, err := h.itemService.RemoveAttribute(c.Request.Context(), id, c.Param("name"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Delete godoc
// @Summary      Delete an item
// @Tags         items
// @Param        id path string true "Item ID" format(uuid)
// @Success      204
// @Router       /catalog/items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := h.parseItemID(c)
	if !ok {
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
