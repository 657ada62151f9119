package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseUintParam reads a numeric path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(value), true
}

// ParsePagination reads the page/pageSize query parameters; clamping happens
// at the repository layer.
func ParsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	return page, pageSize
}
