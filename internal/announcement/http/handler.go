package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/courtside-backend/internal/announcement"
	"github.com/courtsidehq/courtside-backend/internal/auth"
	"github.com/courtsidehq/courtside-backend/internal/pkg/response"
	"github.com/courtsidehq/courtside-backend/internal/user"
)

type AnnouncementHandler struct {
	service     announcement.Service
	userService user.Service
}

func NewHandler(service announcement.Service, userService user.Service) *AnnouncementHandler {
	return &AnnouncementHandler{
		service:     service,
		userService: userService,
	}
}

func (h *AnnouncementHandler) isSysAdmin(c *gin.Context, userID string) bool {
	u, err := h.userService.GetByID(c.Request.Context(), userID)
	return err == nil && u.IsSystemAdmin
}

// ListVisible serves the public feed: only announcements live right now,
// optionally scoped to a club.
func (h *AnnouncementHandler) ListVisible(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	items, total, err := h.service.ListVisible(c.Request.Context(), c.Query("club_id"), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]AnnouncementResponse, 0, len(items))
	for _, a := range items {
		resp = append(resp, NewResponse(a))
	}
	c.JSON(http.StatusOK, response.NewPageResponse(resp, page, pageSize, total))
}

// List serves the management view, including not-yet-published and expired
// notices.
func (h *AnnouncementHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := announcement.Filter{
		ClubID:   c.Query("club_id"),
		Keyword:  c.Query("keyword"),
		Page:     page,
		PageSize: pageSize,
	}

	items, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]AnnouncementResponse, 0, len(items))
	for _, a := range items {
		resp = append(resp, NewResponse(a))
	}
	c.JSON(http.StatusOK, response.NewPageResponse(resp, page, pageSize, total))
}

func (h *AnnouncementHandler) Get(c *gin.Context) {
	a, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewResponse(a))
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	var body CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	a, err := h.service.Create(c.Request.Context(), announcement.CreateRequest{
		ClubID:       body.ClubID,
		Title:        body.Title,
		Content:      body.Content,
		PublishFrom:  body.PublishFrom,
		PublishUntil: body.PublishUntil,
	}, userID, h.isSysAdmin(c, userID))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewResponse(a))
}

func (h *AnnouncementHandler) Update(c *gin.Context) {
	var body UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	a, err := h.service.Update(c.Request.Context(), c.Param("id"), announcement.UpdateRequest{
		Title:        body.Title,
		Content:      body.Content,
		PublishFrom:  body.PublishFrom,
		PublishUntil: body.PublishUntil,
	}, userID, h.isSysAdmin(c, userID))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewResponse(a))
}

func (h *AnnouncementHandler) Delete(c *gin.Context) {
	userID := auth.GetUserID(c)
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), userID, h.isSysAdmin(c, userID)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
