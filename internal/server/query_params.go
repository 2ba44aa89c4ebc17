package server

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// pageParam parses ?page=, defaulting to 1 for absent or junk values.
func pageParam(c *gin.Context) int {
	raw := strings.TrimSpace(c.Query("page"))
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func queryParam(c *gin.Context) string {
	return strings.TrimSpace(c.Query("query"))
}
