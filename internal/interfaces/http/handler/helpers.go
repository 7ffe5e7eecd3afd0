package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/shopcore/catalog/internal/interfaces/http/middleware"
)

// bindJSON binds the request body and writes the error response on failure.
// Returns false when binding failed and the response has been written.
func (h *BaseHandler) bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			middleware.HandleValidationError(c, err)
		} else {
			h.BadRequest(c, "Invalid request body")
		}
		return false
	}
	return true
}

// bindQuery binds query parameters and writes the error response on failure
func (h *BaseHandler) bindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			middleware.HandleValidationError(c, err)
		} else {
			h.BadRequest(c, "Invalid query parameters")
		}
		return false
	}
	return true
}
