package http

import "github.com/gin-gonic/gin"

func RegisterRoutes(g *gin.RouterGroup, h *FileHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/files")

	// Serving is public so photo URLs can be embedded anywhere.
	group.GET("/:id", h.ServeFile)
	group.GET("/:id/thumbnail", h.ServeThumbnail)

	authed := group.Group("")
	authed.Use(authMiddleware)
	{
		authed.POST("", h.Upload)
		authed.DELETE("/:id", h.Delete)
	}
}
