package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *CoachHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/coaches")

	// Bookability is public so players can probe coach schedules before login.
	group.GET("/:id/bookable", h.CheckBookable)

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)

		group.GET("/:id/weekly-slots", h.ListWeeklySlots)
		group.POST("/:id/weekly-slots", h.CreateWeeklySlot)
		group.DELETE("/:id/weekly-slots/:slotId", h.DeleteWeeklySlot)

		group.GET("/:id/time-off", h.ListTimeOff)
		group.POST("/:id/time-off", h.CreateTimeOff)
		group.DELETE("/:id/time-off/:timeOffId", h.DeleteTimeOff)
	}
}
