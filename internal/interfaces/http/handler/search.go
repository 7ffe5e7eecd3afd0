package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/shopcore/catalog/internal/application/catalog"
	"github.com/shopcore/catalog/internal/domain/catalog"
)

// SearchHandler handles product search API endpoints
type SearchHandler struct {
	BaseHandler
	searchService *catalogapp.SearchService
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(searchService *catalogapp.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search godoc
// @Summary      Search the product catalog
// @Description  Full filter set: text, category, brand, price range, sort and paging
// @Tags         search
// @Produce      json
// @Param        q query string false "Free text query"
// @Param        category_id query []string false "Category IDs"
// @Param        brand query []string false "Brands"
// @Param        min_price query string false "Minimum price"
// @Param        max_price query string false "Maximum price"
// @Param        sort query string false "Sort order" Enums(RELEVANCE, NAME_ASC, NAME_DESC, PRICE_ASC, PRICE_DESC)
// @Param        page query int false "Page number (0-based)" default(0)
// @Param        size query int false "Page size" default(20) maximum(100)
// @Success      200 {object} dto.Response{data=catalogapp.SearchResult}
// @Router       /catalog/search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	var req catalogapp.SearchRequest
	if !h.bindQuery(c, &req) {
		return
	}

	result, err := h.searchService.Search(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByProduct godoc
// @Summary      Get the index entry for a product
// @Tags         search
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} dto.Response{data=catalogapp.SearchHit}
// @Router       /catalog/search/products/{id} [get]
func (h *SearchHandler) GetByProduct(c *gin.Context) {
	id, err := catalog.ParseProductID(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	hit, err := h.searchService.GetByProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, hit)
}
