package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/shopcore/catalog/internal/application/catalog"
	"github.com/shopcore/catalog/internal/domain/catalog"
)

// CategoryHandler handles category API endpoints
type CategoryHandler struct {
	BaseHandler
	categoryService *catalogapp.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService *catalogapp.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) parseCategoryID(c *gin.Context) (catalog.CategoryID, bool) {
	id, err := catalog.ParseCategoryID(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID")
		return catalog.CategoryID{}, false
	}
	return id, true
}

// Create godoc
// @Summary      Create a category
// @Description  Creates a root category, or a child when parent_id is given
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body catalogapp.CreateCategoryRequest true "Category creation request"
// @Success      201 {object} dto.Response{data=catalogapp.CategoryResponse}
// @Router       /catalog/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req catalogapp.CreateCategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, category)
}

// GetByID godoc
// @Summary      Get a category by ID
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.CategoryResponse}
// @Router       /catalog/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := h.parseCategoryID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// List godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Param        active query bool false "Only active categories"
// @Success      200 {object} dto.Response{data=[]catalogapp.CategoryResponse}
// @Router       /catalog/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	categories, err := h.categoryService.List(c.Request.Context(), activeOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, categories)
}

// AddSubcategory godoc
// @Summary      Add a subcategory to a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Param        request body catalogapp.AddSubcategoryRequest true "Subcategory to add"
// @Success      200 {object} dto.Response{data=catalogapp.CategoryResponse}
// @Router       /catalog/categories/{id}/subcategories [post]
func (h *CategoryHandler) AddSubcategory(c *gin.Context) {
	id, ok := h.parseCategoryID(c)
	if !ok {
		return
	}

	var req catalogapp.AddSubcategoryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.AddSubcategory(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}

// Deactivate godoc
// @Summary      Deactivate a category
// @Tags         categories
// @Produce      json
// @Param        id path string true "Category ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.CategoryResponse}
// @Router       /catalog/categories/{id}/deactivate [post]
func (h *CategoryHandler) Deactivate(c *gin.Context) {
	id, ok := h.parseCategoryID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, category)
}
