package http

import (
	"github.com/gin-gonic/gin"

	"freezer-inventory/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Parsing routes are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("/parse", mw.RateLimit(), h.Parse)
		items.POST("/parse-batch", mw.RateLimit(), h.ParseBatch)
		items.GET("/categories", h.Categories)
	}
}
