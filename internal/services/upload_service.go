package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"loja/pkg/blobstore"

	"github.com/google/uuid"
)

// MaxImageSize is the upload limit for product images.
const MaxImageSize = 5 * 1024 * 1024

// Upload rejection reasons, surfaced to the admin as 400s.
var (
	ErrUnsupportedImageType = errors.New("unsupported image type, use JPG, PNG, GIF or WebP")
	ErrImageTooLarge        = errors.New("image too large, maximum is 5MB")
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadService validates and stores product images in the blob store and
// hands back the public URL the catalog should reference.
type UploadService struct {
	blobs         blobstore.Store
	publicBaseURL string
}

// NewUploadService creates a new UploadService. publicBaseURL is the
// externally reachable prefix under which stored blobs are served.
func NewUploadService(blobs blobstore.Store, publicBaseURL string) *UploadService {
	return &UploadService{
		blobs:         blobs,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// UploadProductImage validates the file and stores it under a unique name.
// It returns the public URL and the storage name of the image.
func (s *UploadService) UploadProductImage(
	ctx context.Context,
	filename, contentType string,
	size int64,
	content io.Reader,
) (publicURL, name string, err error) {
	if !allowedImageTypes[contentType] {
		return "", "", ErrUnsupportedImageType
	}
	if size > MaxImageSize {
		return "", "", ErrImageTooLarge
	}

	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" {
		ext = extensionForType(contentType)
	}
	name = fmt.Sprintf("products/%d-%s.%s", time.Now().UnixMilli(), shortRandom(), ext)

	// Guard against clients understating the size in the header.
	limited := io.LimitReader(content, MaxImageSize+1)
	if err := s.blobs.Put(ctx, name, contentType, limited); err != nil {
		return "", "", fmt.Errorf("failed to store image: %w", err)
	}

	return s.publicBaseURL + "/" + name, name, nil
}

func extensionForType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/gif":
		return "gif"
	case "image/webp":
		return "webp"
	}
	return "bin"
}

func shortRandom() string {
	// First uuid group is plenty for a per-millisecond suffix.
	return uuid.New().String()[:8]
}
