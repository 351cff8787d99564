package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *AnnouncementHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/announcements")

	// === Public Routes ===
	group.GET("", h.ListVisible)
	group.GET("/:id", h.Get)

	// === Management Routes ===
	managed := group.Group("")
	managed.Use(authMiddleware)
	{
		managed.GET("/all", h.List)
		managed.POST("", h.Create)
		managed.PATCH("/:id", h.Update)
		managed.DELETE("/:id", h.Delete)
	}
}
