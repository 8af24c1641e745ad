package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/washerhq/carwash-api/internal/middleware"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func actor(c *gin.Context) string {
	if v, ok := c.Get(middleware.ContextUsername); ok {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}
