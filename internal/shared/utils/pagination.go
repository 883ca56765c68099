package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/estately-inc/estately/internal/shared/errors"
)

// ParseUintParam reads a positive integer path parameter such as ":id".
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid "+name, name+" must be a positive integer")
	}
	return uint(id), nil
}

// QueryInt parses an integer query parameter with a default value for
// missing, malformed or non-positive input.
func QueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}
