package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtsidehq/courtside-backend/internal/auth"
	"github.com/courtsidehq/courtside-backend/internal/file"
	"github.com/courtsidehq/courtside-backend/internal/pkg/response"
	"github.com/courtsidehq/courtside-backend/internal/user"
)

type FileHandler struct {
	service     file.Service
	userService user.Service
}

func NewHandler(service file.Service, userService user.Service) *FileHandler {
	return &FileHandler{
		service:     service,
		userService: userService,
	}
}

// Upload accepts a multipart photo under the "file" field. The "kind" field
// tags what the photo is for.
func (h *FileHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := h.service.Upload(c.Request.Context(), file.UploadInput{
		FileHeader: header,
		UserID:     auth.GetUserID(c),
		Kind:       file.Kind(c.PostForm("kind")),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	var thumbURL *string
	if f.ThumbnailPath != nil {
		t := file.ThumbnailURL(f.ID)
		thumbURL = &t
	}
	c.JSON(http.StatusCreated, FileUploadResponse{
		FileID:       f.ID,
		URL:          file.URL(f.ID),
		ThumbnailURL: thumbURL,
	})
}

func (h *FileHandler) ServeFile(c *gin.Context) {
	stream, info, err := h.service.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", info.ContentType)
	c.Header("Content-Disposition", `inline; filename="`+info.Filename+`"`)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}

func (h *FileHandler) ServeThumbnail(c *gin.Context) {
	stream, info, err := h.service.DownloadThumbnail(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", `inline; filename="`+info.Filename+`_thumb.jpg"`)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}

// Delete removes a photo. Only the uploader or a system admin may delete.
func (h *FileHandler) Delete(c *gin.Context) {
	userID := auth.GetUserID(c)
	f, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	if f.UserID != userID {
		u, err := h.userService.GetByID(c.Request.Context(), userID)
		if err != nil || !u.IsSystemAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
			return
		}
	}

	if err := h.service.Delete(c.Request.Context(), f.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
