package http

import (
	"time"

	"github.com/courtsidehq/courtside-backend/internal/announcement"
)

type AnnouncementResponse struct {
	ID           string     `json:"id"`
	ClubID       *string    `json:"club_id,omitempty"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	PublishFrom  time.Time  `json:"publish_from"`
	PublishUntil *time.Time `json:"publish_until,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func NewResponse(a *announcement.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:           a.ID,
		ClubID:       a.ClubID,
		Title:        a.Title,
		Content:      a.Content,
		PublishFrom:  a.PublishFrom,
		PublishUntil: a.PublishUntil,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

type CreateAnnouncementRequest struct {
	ClubID       *string    `json:"club_id" binding:"omitempty,uuid"`
	Title        string     `json:"title" binding:"required"`
	Content      string     `json:"content" binding:"required"`
	PublishFrom  *time.Time `json:"publish_from"`
	PublishUntil *time.Time `json:"publish_until"`
}

type UpdateAnnouncementRequest struct {
	Title        *string    `json:"title"`
	Content      *string    `json:"content"`
	PublishFrom  *time.Time `json:"publish_from"`
	PublishUntil *time.Time `json:"publish_until"`
}
