package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *OrganizationHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/organizations")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PATCH("/:id", h.Update)
		group.DELETE("/:id", h.Delete)

		group.GET("/:id/members", h.ListMembers)
		group.POST("/:id/members", h.AddMember)
		group.PATCH("/:id/members/:userId", h.UpdateMember)
		group.DELETE("/:id/members/:userId", h.RemoveMember)
	}
}
