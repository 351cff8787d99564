package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *CourtHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/courts")

	// Availability and pricing are public so players can browse before login.
	group.GET("/:id/availability", h.Availability)
	group.GET("/:id/price", h.Quote)

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)

		group.GET("/:id/price-rules", h.ListPriceRules)
		group.POST("/:id/price-rules", h.CreatePriceRule)
		group.DELETE("/:id/price-rules/:ruleId", h.DeletePriceRule)
	}
}
