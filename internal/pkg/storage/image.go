package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"github.com/disintegration/imaging"
)

const jpegQuality = 85

// ImageProcessor normalizes uploaded photos: originals are capped to a
// bounding box and re-encoded as JPEG, thumbnails are small previews.
type ImageProcessor struct{}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{}
}

// Normalize decodes the image and fits it into maxWidth x maxHeight,
// keeping aspect ratio. Smaller images pass through un-scaled but are
// still re-encoded as JPEG.
func (p *ImageProcessor) Normalize(content io.Reader, maxWidth, maxHeight int) (io.Reader, error) {
	img, _, err := image.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("decode image failed: %w", err)
	}
	return encodeJPEG(imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos))
}

// Thumbnail produces a small JPEG preview within the bounding box.
func (p *ImageProcessor) Thumbnail(content io.Reader, maxWidth, maxHeight int) (io.Reader, error) {
	img, _, err := image.Decode(content)
	if err != nil {
		return nil, fmt.Errorf("decode image failed: %w", err)
	}
	return encodeJPEG(imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos))
}

func encodeJPEG(img image.Image) (io.Reader, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg failed: %w", err)
	}
	return buf, nil
}
