package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *ClubHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/clubs")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)

		// Business hours and date-specific exceptions
		group.GET("/:id/hours", h.ListHours)
		group.PUT("/:id/hours", h.SetHours)
		group.GET("/:id/special-hours", h.ListExceptions)
		group.POST("/:id/special-hours", h.CreateException)
		group.DELETE("/:id/special-hours/:exceptionId", h.DeleteException)
	}
}
