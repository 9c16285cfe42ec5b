package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"forestdash/internal/shared/errors"
)

// ParseUintParam parses a positive numeric identifier from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "rangeId").
// entityName is used in error messages (e.g., "officer", "forest range").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		appErr := errors.NewFieldValidationError(
			[]string{paramName},
			[]string{fmt.Sprintf("invalid %s ID %q", entityName, raw)},
		)
		return 0, appErr
	}

	return uint(id), nil
}
