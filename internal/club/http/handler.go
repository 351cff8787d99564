package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/courtside-backend/internal/auth"
	"github.com/courtsidehq/courtside-backend/internal/club"
	"github.com/courtsidehq/courtside-backend/internal/organization"
	"github.com/courtsidehq/courtside-backend/internal/pkg/response"
)

type ClubHandler struct {
	service    club.Service
	orgService organization.Service
}

func NewHandler(service club.Service, orgService organization.Service) *ClubHandler {
	return &ClubHandler{
		service:    service,
		orgService: orgService,
	}
}

// checkOrgPermission verifies the authenticated user is an Owner or Admin of
// the given organization.
func (h *ClubHandler) checkOrgPermission(c *gin.Context, orgID string) bool {
	userID := auth.GetUserID(c)
	if userID == "" {
		return false
	}
	ok, err := h.orgService.IsManagerOrAbove(c.Request.Context(), orgID, userID)
	return err == nil && ok
}

// checkClubPermission verifies the user manages the organization owning the club.
func (h *ClubHandler) checkClubPermission(c *gin.Context, clubID string) bool {
	userID := auth.GetUserID(c)
	if userID == "" {
		return false
	}
	ok, err := h.service.IsManagerOrAbove(c.Request.Context(), clubID, userID)
	return err == nil && ok
}

func (h *ClubHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := club.Filter{
		OrganizationID: c.Query("organization_id"),
		Keyword:        c.Query("q"),
		Page:           page,
		PageSize:       pageSize,
	}

	clubs, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ClubResponse, len(clubs))
	for i, cl := range clubs {
		items[i] = NewClubResponse(cl)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *ClubHandler) Get(c *gin.Context) {
	cl, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewClubResponse(cl))
}

func (h *ClubHandler) Create(c *gin.Context) {
	var body CreateClubRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkOrgPermission(c, body.OrganizationID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden: only organization admins can create clubs"})
		return
	}

	cl, err := h.service.Create(c.Request.Context(), club.CreateRequest{
		OrganizationID: body.OrganizationID,
		Name:           body.Name,
		Timezone:       body.Timezone,
		Address:        body.Address,
		Description:    body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewClubResponse(cl))
}

func (h *ClubHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var body UpdateClubRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkClubPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	cl, err := h.service.Update(c.Request.Context(), id, club.UpdateRequest{
		Name:        body.Name,
		Timezone:    body.Timezone,
		Address:     body.Address,
		Description: body.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewClubResponse(cl))
}

func (h *ClubHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.checkClubPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClubHandler) ListHours(c *gin.Context) {
	rules, err := h.service.ListBusinessHours(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	items := make([]BusinessHourResponse, len(rules))
	for i, r := range rules {
		items[i] = NewBusinessHourResponse(r)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ClubHandler) SetHours(c *gin.Context) {
	id := c.Param("id")
	var body SetBusinessHoursRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkClubPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	rule, err := h.service.SetBusinessHours(c.Request.Context(), id, club.SetHoursRequest{
		DayOfWeek: body.DayOfWeek,
		OpenTime:  body.OpenTime,
		CloseTime: body.CloseTime,
		IsClosed:  body.IsClosed,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewBusinessHourResponse(*rule))
}

func (h *ClubHandler) ListExceptions(c *gin.Context) {
	exceptions, err := h.service.ListExceptions(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	items := make([]ExceptionResponse, len(exceptions))
	for i, ex := range exceptions {
		items[i] = NewExceptionResponse(ex)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *ClubHandler) CreateException(c *gin.Context) {
	id := c.Param("id")
	var body CreateExceptionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkClubPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	ex, err := h.service.CreateException(c.Request.Context(), id, club.CreateExceptionRequest{
		Date:      body.Date,
		OpenTime:  body.OpenTime,
		CloseTime: body.CloseTime,
		IsClosed:  body.IsClosed,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewExceptionResponse(*ex))
}

func (h *ClubHandler) DeleteException(c *gin.Context) {
	id := c.Param("id")
	if !h.checkClubPermission(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.service.DeleteException(c.Request.Context(), id, c.Param("exceptionId")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
