package file

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"github.com/courtsidehq/courtside-backend/internal/pkg/storage"
)

const (
	maxUploadBytes = 10 << 20 // 10 MiB

	// Originals are capped so a phone photo doesn't land at full resolution.
	normalizedMaxSide = 1600
	thumbMaxSide      = 320
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type UploadInput struct {
	FileHeader *multipart.FileHeader
	UserID     string
	Kind       Kind
}

type Service interface {
	// Upload validates, normalizes and stores a photo, generating a
	// thumbnail alongside the original.
	Upload(ctx context.Context, input UploadInput) (*File, error)
	GetByID(ctx context.Context, id string) (*File, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *File, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *File, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, input UploadInput) (*File, error) {
	if !ValidKind(input.Kind) {
		return nil, ErrInvalidKind
	}
	if input.FileHeader.Size > maxUploadBytes {
		return nil, ErrTooLarge
	}

	contentType := input.FileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return nil, ErrUnsupportedType
	}

	src, err := input.FileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file failed: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read uploaded file failed: %w", err)
	}

	normalized, err := s.imgProc.Normalize(bytes.NewReader(raw), normalizedMaxSide, normalizedMaxSide)
	if err != nil {
		return nil, ErrUnsupportedType
	}
	body, err := io.ReadAll(normalized)
	if err != nil {
		return nil, fmt.Errorf("read normalized image failed: %w", err)
	}

	fileID := uuid.New().String()
	shard := fileID[:2]
	storagePath := fmt.Sprintf("upload/%s/%s.jpg", shard, fileID)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(body)); err != nil {
		return nil, fmt.Errorf("save file failed: %w", err)
	}

	var thumbnailPath *string
	if thumb, err := s.imgProc.Thumbnail(bytes.NewReader(raw), thumbMaxSide, thumbMaxSide); err == nil {
		tPath := fmt.Sprintf("upload/%s/%s_thumb.jpg", shard, fileID)
		if err := s.storage.Save(ctx, tPath, thumb); err == nil {
			thumbnailPath = &tPath
		}
	}

	f := &File{
		ID:            fileID,
		UserID:        input.UserID,
		Kind:          input.Kind,
		Filename:      input.FileHeader.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   "image/jpeg",
		Size:          int64(len(body)),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*File, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *File, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, f.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve file failed: %w", err)
	}
	return stream, f, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *File, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if f.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *f.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve thumbnail failed: %w", err)
	}
	return stream, f, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Best-effort storage cleanup; the record is the source of truth.
	_ = s.storage.Delete(ctx, f.StoragePath)
	if f.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *f.ThumbnailPath)
	}
	return s.repo.Delete(ctx, id)
}
