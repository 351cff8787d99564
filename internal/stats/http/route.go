package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *StatsHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/clubs/:id/stats")
	group.Use(authMiddleware)
	{
		group.GET("", h.Daily)
	}
}
