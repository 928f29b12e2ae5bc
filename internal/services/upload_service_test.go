package services_test

import (
	"context"
	"io"
	"regexp"
	"strings"
	"testing"

	"loja/internal/services"

	"github.com/stretchr/testify/assert"
)

// recordingBlobStore captures Put calls for assertions.
type recordingBlobStore struct {
	names        []string
	contentTypes []string
	contents     []string
}

func (s *recordingBlobStore) Put(_ context.Context, name, contentType string, content io.Reader) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	s.names = append(s.names, name)
	s.contentTypes = append(s.contentTypes, contentType)
	s.contents = append(s.contents, string(data))
	return nil
}

func TestUploadService_UploadProductImage(t *testing.T) {
	blobs := &recordingBlobStore{}
	uploadService := services.NewUploadService(blobs, "https://cdn.example.com/")

	publicURL, name, err := uploadService.UploadProductImage(
		context.Background(), "foto do produto.png", "image/png", 14, strings.NewReader("fake png bytes"))
	assert.NoError(t, err)

	namePattern := regexp.MustCompile(`^products/\d+-[0-9a-f]{8}\.png$`)
	assert.Regexp(t, namePattern, name)
	assert.Equal(t, "https://cdn.example.com/"+name, publicURL)

	assert.Len(t, blobs.names, 1)
	assert.Equal(t, name, blobs.names[0])
	assert.Equal(t, "image/png", blobs.contentTypes[0])
	assert.Equal(t, "fake png bytes", blobs.contents[0])
}

func TestUploadService_ExtensionFallsBackToContentType(t *testing.T) {
	blobs := &recordingBlobStore{}
	uploadService := services.NewUploadService(blobs, "https://cdn.example.com")

	_, name, err := uploadService.UploadProductImage(
		context.Background(), "semextensao", "image/webp", 4, strings.NewReader("webp"))
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, ".webp"), name)
}

func TestUploadService_RejectsUnsupportedType(t *testing.T) {
	blobs := &recordingBlobStore{}
	uploadService := services.NewUploadService(blobs, "https://cdn.example.com")

	_, _, err := uploadService.UploadProductImage(
		context.Background(), "evil.svg", "image/svg+xml", 10, strings.NewReader("<svg/>"))
	assert.ErrorIs(t, err, services.ErrUnsupportedImageType)
	assert.Empty(t, blobs.names)
}

func TestUploadService_RejectsOversizedImage(t *testing.T) {
	blobs := &recordingBlobStore{}
	uploadService := services.NewUploadService(blobs, "https://cdn.example.com")

	_, _, err := uploadService.UploadProductImage(
		context.Background(), "big.jpg", "image/jpeg", services.MaxImageSize+1, strings.NewReader("x"))
	assert.ErrorIs(t, err, services.ErrImageTooLarge)
	assert.Empty(t, blobs.names)
}
