package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded media lives. Paths are relative and
// forward-slash separated.
type Storage interface {
	Save(ctx context.Context, path string, content io.Reader) error
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
