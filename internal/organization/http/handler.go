package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/courtside-backend/internal/auth"
	"github.com/courtsidehq/courtside-backend/internal/organization"
	"github.com/courtsidehq/courtside-backend/internal/pkg/response"
)

type OrganizationHandler struct {
	service organization.Service
}

func NewHandler(service organization.Service) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

func (h *OrganizationHandler) checkOwner(c *gin.Context, orgID string) bool {
	ok, err := h.service.IsOwner(c.Request.Context(), orgID, auth.GetUserID(c))
	return err == nil && ok
}

func (h *OrganizationHandler) checkManager(c *gin.Context, orgID string) bool {
	ok, err := h.service.IsManagerOrAbove(c.Request.Context(), orgID, auth.GetUserID(c))
	return err == nil && ok
}

func (h *OrganizationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	orgs, total, err := h.service.List(c.Request.Context(), organization.Filter{Page: page, PageSize: pageSize})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]OrganizationResponse, len(orgs))
	for i, o := range orgs {
		items[i] = NewOrganizationResponse(o)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *OrganizationHandler) Get(c *gin.Context) {
	org, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrganizationResponse(org))
}

func (h *OrganizationHandler) Create(c *gin.Context) {
	var body CreateOrganizationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	org, err := h.service.Create(c.Request.Context(), body.Name, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, NewOrganizationResponse(org))
}

func (h *OrganizationHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var body UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkOwner(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden: only owners can update the organization"})
		return
	}

	org, err := h.service.Update(c.Request.Context(), id, organization.UpdateRequest{
		Name:     body.Name,
		IsActive: body.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewOrganizationResponse(org))
}

func (h *OrganizationHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.checkOwner(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrganizationHandler) ListMembers(c *gin.Context) {
	id := c.Param("id")
	if !h.checkManager(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	members, total, err := h.service.ListMembers(c.Request.Context(), id, organization.MemberFilter{Page: page, PageSize: pageSize})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]MemberResponse, len(members))
	for i, m := range members {
		items[i] = NewMemberResponse(m)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *OrganizationHandler) AddMember(c *gin.Context) {
	id := c.Param("id")
	var body AddMemberRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkOwner(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden: only owners can manage members"})
		return
	}

	if err := h.service.AddMember(c.Request.Context(), id, body.UserID, body.Role); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *OrganizationHandler) UpdateMember(c *gin.Context) {
	id := c.Param("id")
	var body UpdateMemberRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.checkOwner(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden: only owners can manage members"})
		return
	}

	if err := h.service.UpdateMemberRole(c.Request.Context(), id, c.Param("userId"), body.Role); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrganizationHandler) RemoveMember(c *gin.Context) {
	id := c.Param("id")
	if !h.checkOwner(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden: only owners can manage members"})
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), id, c.Param("userId")); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
