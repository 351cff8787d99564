package file

import (
	"net/http"
	"time"

	"github.com/courtsidehq/courtside-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "file not found")
	ErrTooLarge        = apperror.New(http.StatusRequestEntityTooLarge, "file exceeds the size limit")
	ErrUnsupportedType = apperror.New(http.StatusUnsupportedMediaType, "unsupported file type")
	ErrNoThumbnail     = apperror.New(http.StatusNotFound, "thumbnail not available")
	ErrInvalidKind     = apperror.New(http.StatusBadRequest, "invalid file kind")
)

// Kind tags what an upload is used for so limits and processing can differ
// per use.
type Kind string

const (
	KindClubPhoto  Kind = "club_photo"
	KindCourtPhoto Kind = "court_photo"
	KindAvatar     Kind = "avatar"
)

func ValidKind(k Kind) bool {
	switch k {
	case KindClubPhoto, KindCourtPhoto, KindAvatar:
		return true
	}
	return false
}

type File struct {
	ID            string
	UserID        string
	Kind          Kind
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public path for serving the file.
func URL(id string) string {
	return "/files/" + id
}

// ThumbnailURL returns the public path for the file's thumbnail.
func ThumbnailURL(id string) string {
	return "/files/" + id + "/thumbnail"
}
