package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/courtside-backend/internal/auth"
	"github.com/courtsidehq/courtside-backend/internal/booking"
	"github.com/courtsidehq/courtside-backend/internal/pkg/request"
	"github.com/courtsidehq/courtside-backend/internal/pkg/response"
	"github.com/courtsidehq/courtside-backend/internal/user"
)

type BookingHandler struct {
	service     booking.Service
	userService user.Service
}

func NewHandler(service booking.Service, userService user.Service) *BookingHandler {
	return &BookingHandler{
		service:     service,
		userService: userService,
	}
}

func (h *BookingHandler) isSysAdmin(c *gin.Context, userID string) bool {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	return err == nil && u.IsSystemAdmin
}

// respondError maps coach scheduling conflicts to a 409 with suggestions;
// everything else goes through the shared error responder.
func respondError(c *gin.Context, err error) {
	var conflict *booking.ConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, ConflictResponse{
			Error:       conflict.Message,
			Reason:      string(conflict.Reason),
			Suggestions: conflict.Suggestions,
		})
		return
	}
	response.Error(c, err)
}

func (h *BookingHandler) List(c *gin.Context) {
	var params request.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	params.Normalize()

	var startTime, endTime *time.Time
	if v := c.Query("start_time_from"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			startTime = &t
		}
	}
	if v := c.Query("start_time_to"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			endTime = &t
		}
	}

	// Normal users only ever see their own bookings; admins may widen.
	currentUserID := auth.GetUserID(c)
	filterUserID := currentUserID
	if h.isSysAdmin(c, currentUserID) {
		filterUserID = c.Query("user_id")
	}

	filter := booking.Filter{
		UserID:    filterUserID,
		CourtID:   c.Query("court_id"),
		CoachID:   c.Query("coach_id"),
		ClubID:    c.Query("club_id"),
		Status:    c.Query("status"),
		StartTime: startTime,
		EndTime:   endTime,
		Page:      params.Page,
		PageSize:  params.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: params.SortOrder,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, params.Page, params.PageSize, total))
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	userID := auth.GetUserID(c)
	if b.UserID != userID && !h.isSysAdmin(c, userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *BookingHandler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:    userID,
		CourtID:   body.CourtID,
		CoachID:   body.CoachID,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	var body RescheduleBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	b, err := h.service.Reschedule(c.Request.Context(), c.Param("id"), booking.RescheduleRequest{
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	}, userID, h.isSysAdmin(c, userID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *BookingHandler) Pay(c *gin.Context) {
	b, err := h.service.Pay(c.Request.Context(), c.Param("id"), auth.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := auth.GetUserID(c)
	b, err := h.service.Cancel(c.Request.Context(), c.Param("id"), userID, h.isSysAdmin(c, userID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	b, err := h.service.MarkNoShow(c.Request.Context(), c.Param("id"), auth.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *BookingHandler) Delete(c *gin.Context) {
	userID := auth.GetUserID(c)
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), userID, h.isSysAdmin(c, userID)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
