package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *BookingHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id/reschedule", h.Reschedule)
		group.POST("/:id/pay", h.Pay)
		group.POST("/:id/cancel", h.Cancel)
		group.POST("/:id/no-show", h.MarkNoShow)
		group.DELETE("/:id", h.Delete)
	}
}
