package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sacvietnam/storefront/internal/format"
)

// requestLang prefers ?lang= over the Accept-Language header.
func requestLang(c *gin.Context, fallback format.Lang) format.Lang {
	if q := c.Query("lang"); q != "" {
		return format.ParseLang(q, fallback)
	}
	return format.ParseLang(c.GetHeader("Accept-Language"), fallback)
}
