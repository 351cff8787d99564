package announcement

import (
	"net/http"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/pkg/apperror"
	"github.com/courtsidehq/courtside-backend/internal/schedule"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "announcement not found")
	ErrTitleRequired    = apperror.New(http.StatusBadRequest, "title is required")
	ErrContentRequired  = apperror.New(http.StatusBadRequest, "content is required")
	ErrInvalidPublishAt = apperror.New(http.StatusBadRequest, "publish_from must be before publish_until")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Announcement is a club notice shown to players inside its publish window.
// A nil ClubID makes it platform-wide.
type Announcement struct {
	ID      string
	ClubID  *string
	Title   string
	Content string

	// PublishFrom/PublishUntil bound visibility. A nil PublishUntil keeps
	// the notice up indefinitely.
	PublishFrom  time.Time
	PublishUntil *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Visible reports whether the announcement should be shown at an instant.
// The window is half-open: the until instant itself is already hidden.
func (a *Announcement) Visible(now time.Time) bool {
	if a.PublishUntil != nil {
		w := schedule.TimeWindow{Start: a.PublishFrom, End: *a.PublishUntil}
		return w.Overlaps(schedule.TimeWindow{Start: now, End: now.Add(time.Nanosecond)})
	}
	return !now.Before(a.PublishFrom)
}

type Filter struct {
	ClubID  string
	Keyword string
	// VisibleAt limits results to announcements live at this instant.
	VisibleAt *time.Time
	Page      int
	PageSize  int
}
