package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/courtside-backend/internal/auth"
	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/pkg/response"
	"github.com/courtsidehq/courtside-backend/internal/stats"
)

type StatsHandler struct {
	service     stats.Service
	clubService club.Service
}

func NewHandler(service stats.Service, clubService club.Service) *StatsHandler {
	return &StatsHandler{
		service:     service,
		clubService: clubService,
	}
}

func (h *StatsHandler) checkClubPermission(c *gin.Context, clubID string) bool {
	userID := auth.GetUserID(c)
	if userID == "" {
		return false
	}
	ok, err := h.clubService.IsManagerOrAbove(c.Request.Context(), clubID, userID)
	return err == nil && ok
}

// Daily serves aggregates for a local date range.
// GET /clubs/:id/stats?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *StatsHandler) Daily(c *gin.Context) {
	clubID := c.Param("id")
	from := c.Query("from")
	to := c.DefaultQuery("to", from)
	if from == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from is required"})
		return
	}

	if !h.checkClubPermission(c, clubID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden: only club managers can view stats"})
		return
	}

	days, err := h.service.Range(c.Request.Context(), clubID, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]DailyStatsResponse, len(days))
	for i, d := range days {
		items[i] = NewDailyStatsResponse(d)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
