package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/courtside-backend/internal/auth"
	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/court"
	"github.com/courtsidehq/courtside-backend/internal/pkg/response"
)

const defaultGranularityMinutes = 60

type CourtHandler struct {
	service     court.Service
	clubService club.Service
}

func NewHandler(service court.Service, clubService club.Service) *CourtHandler {
	return &CourtHandler{
		service:     service,
		clubService: clubService,
	}
}

// checkClubPermission verifies the user manages the organization owning the club.
func (h *CourtHandler) checkClubPermission(c *gin.Context, clubID string) bool {
	userID := auth.GetUserID(c)
	if userID == "" {
		return false
	}
	ok, err := h.clubService.IsManagerOrAbove(c.Request.Context(), clubID, userID)
	return err == nil && ok
}

// checkCourtPermission resolves the court's club first.
func (h *CourtHandler) checkCourtPermission(c *gin.Context, courtID string) bool {
	crt, err := h.service.GetByID(c.Request.Context(), courtID)
	if err != nil {
		return false
	}
	return h.checkClubPermission(c, crt.ClubID)
}

func (h *CourtHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := court.Filter{
		ClubID:   c.Query("club_id"),
		Sport:    c.Query("sport"),
		Page:     page,
		PageSize: pageSize,
	}

	courts, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]CourtResponse, len(courts))
	for i, crt := range courts {
		items[i] = NewCourtResponse(crt)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *CourtHandler) Get(c *gin.Context) {
	crt, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCourtResponse(crt))
}

func (h *CourtHandler) Create(c *gin.Context) {
	var body CreateCourtRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkClubPermission(c, body.ClubID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden: only club managers can create courts"})
		return
	}

	crt, err := h.service.Create(c.Request.Context(), court.CreateRequest{
		ClubID:            body.ClubID,
		Name:              body.Name,
		Sport:             body.Sport,
		Indoor:            body.Indoor,
		DefaultPriceCents: body.DefaultPriceCents,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewCourtResponse(crt))
}

func (h *CourtHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var body UpdateCourtRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkCourtPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	crt, err := h.service.Update(c.Request.Context(), id, court.UpdateRequest{
		Name:              body.Name,
		Sport:             body.Sport,
		Indoor:            body.Indoor,
		DefaultPriceCents: body.DefaultPriceCents,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCourtResponse(crt))
}

func (h *CourtHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.checkCourtPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Availability serves the slot grid for one local date.
// GET /courts/:id/availability?date=YYYY-MM-DD&granularity=60
func (h *CourtHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	granularity, err := strconv.Atoi(c.DefaultQuery("granularity", strconv.Itoa(defaultGranularityMinutes)))
	if err != nil {
		response.Error(c, court.ErrInvalidGranularity)
		return
	}

	availability, err := h.service.DayAvailability(c.Request.Context(), c.Param("id"), date, granularity)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewAvailabilityResponse(availability))
}

// Quote resolves the price of a local slot.
// GET /courts/:id/price?date=YYYY-MM-DD&start=HH:MM&end=HH:MM
func (h *CourtHandler) Quote(c *gin.Context) {
	date := c.Query("date")
	start := c.Query("start")
	end := c.Query("end")
	if date == "" || start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date, start and end are required"})
		return
	}

	price, err := h.service.QuoteLocal(c.Request.Context(), c.Param("id"), date, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, QuoteResponse{PriceCents: price})
}

func (h *CourtHandler) ListPriceRules(c *gin.Context) {
	rules, err := h.service.ListPriceRules(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	items := make([]PriceRuleResponse, len(rules))
	for i, r := range rules {
		items[i] = NewPriceRuleResponse(r)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *CourtHandler) CreatePriceRule(c *gin.Context) {
	id := c.Param("id")
	var body CreatePriceRuleRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkCourtPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	rule, err := h.service.AddPriceRule(c.Request.Context(), id, court.PriceRuleRequest{
		DayOfWeek:  body.DayOfWeek,
		StartTime:  body.StartTime,
		EndTime:    body.EndTime,
		PriceCents: body.PriceCents,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewPriceRuleResponse(*rule))
}

func (h *CourtHandler) DeletePriceRule(c *gin.Context) {
	id := c.Param("id")
	if !h.checkCourtPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.service.DeletePriceRule(c.Request.Context(), id, c.Param("ruleId")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
