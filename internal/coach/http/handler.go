package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/courtside-backend/internal/auth"
	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/coach"
	"github.com/courtsidehq/courtside-backend/internal/pkg/response"
)

const defaultSuggestionLimit = 3

type CoachHandler struct {
	service     coach.Service
	clubService club.Service
}

func NewHandler(service coach.Service, clubService club.Service) *CoachHandler {
	return &CoachHandler{
		service:     service,
		clubService: clubService,
	}
}

func (h *CoachHandler) checkClubPermission(c *gin.Context, clubID string) bool {
	userID := auth.GetUserID(c)
	if userID == "" {
		return false
	}
	ok, err := h.clubService.IsManagerOrAbove(c.Request.Context(), clubID, userID)
	return err == nil && ok
}

// checkCoachPermission allows club managers and the coach's own linked account.
func (h *CoachHandler) checkCoachPermission(c *gin.Context, coachID string) bool {
	co, err := h.service.GetByID(c.Request.Context(), coachID)
	if err != nil {
		return false
	}
	userID := auth.GetUserID(c)
	if co.UserID != nil && userID != "" && *co.UserID == userID {
		return true
	}
	return h.checkClubPermission(c, co.ClubID)
}

func (h *CoachHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := coach.Filter{
		ClubID:   c.Query("club_id"),
		Page:     page,
		PageSize: pageSize,
	}

	coaches, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]CoachResponse, len(coaches))
	for i, co := range coaches {
		items[i] = NewCoachResponse(co)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *CoachHandler) Get(c *gin.Context) {
	co, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCoachResponse(co))
}

func (h *CoachHandler) Create(c *gin.Context) {
	var body CreateCoachRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkClubPermission(c, body.ClubID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden: only club managers can add coaches"})
		return
	}

	co, err := h.service.Create(c.Request.Context(), coach.CreateRequest{
		ClubID:          body.ClubID,
		UserID:          body.UserID,
		DisplayName:     body.DisplayName,
		Bio:             body.Bio,
		HourlyRateCents: body.HourlyRateCents,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewCoachResponse(co))
}

func (h *CoachHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var body UpdateCoachRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkCoachPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	co, err := h.service.Update(c.Request.Context(), id, coach.UpdateRequest{
		DisplayName:     body.DisplayName,
		Bio:             body.Bio,
		HourlyRateCents: body.HourlyRateCents,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCoachResponse(co))
}

func (h *CoachHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	co, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !h.checkClubPermission(c, co.ClubID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CoachHandler) ListWeeklySlots(c *gin.Context) {
	slots, err := h.service.ListWeeklySlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	items := make([]WeeklySlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewWeeklySlotResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *CoachHandler) CreateWeeklySlot(c *gin.Context) {
	id := c.Param("id")
	var body CreateWeeklySlotRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkCoachPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	slot, err := h.service.AddWeeklySlot(c.Request.Context(), id, coach.WeeklySlotRequest{
		DayOfWeek: body.DayOfWeek,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Note:      body.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewWeeklySlotResponse(*slot))
}

func (h *CoachHandler) DeleteWeeklySlot(c *gin.Context) {
	id := c.Param("id")
	if !h.checkCoachPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.service.DeleteWeeklySlot(c.Request.Context(), id, c.Param("slotId")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CoachHandler) ListTimeOff(c *gin.Context) {
	entries, err := h.service.ListTimeOff(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	items := make([]TimeOffResponse, len(entries))
	for i, t := range entries {
		items[i] = NewTimeOffResponse(t)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *CoachHandler) CreateTimeOff(c *gin.Context) {
	id := c.Param("id")
	var body CreateTimeOffRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkCoachPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	off, err := h.service.AddTimeOff(c.Request.Context(), id, coach.TimeOffRequest{
		Date:      body.Date,
		FullDay:   body.FullDay,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
		Reason:    body.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewTimeOffResponse(*off))
}

func (h *CoachHandler) DeleteTimeOff(c *gin.Context) {
	id := c.Param("id")
	if !h.checkCoachPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.service.DeleteTimeOff(c.Request.Context(), id, c.Param("timeOffId")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckBookable answers whether the coach can take a slot, without creating
// anything. Rejections come back with alternatives.
// GET /coaches/:id/bookable?date=YYYY-MM-DD&start=HH:MM&duration=60
func (h *CoachHandler) CheckBookable(c *gin.Context) {
	date := c.Query("date")
	start := c.Query("start")
	if date == "" || start == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and start are required"})
		return
	}
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "60"))
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration must be a positive number of minutes"})
		return
	}

	verdict, err := h.service.CheckBooking(c.Request.Context(), c.Param("id"), date, start, duration)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := BookabilityResponse{Bookable: verdict.OK}
	if !verdict.OK {
		resp.Reason = string(verdict.Reason)
		resp.Message = verdict.Message
		suggestions, err := h.service.SuggestAlternatives(
			c.Request.Context(), c.Param("id"), date, start, duration, defaultSuggestionLimit)
		if err == nil {
			resp.Suggestions = suggestions
		}
	}
	c.JSON(http.StatusOK, resp)
}
