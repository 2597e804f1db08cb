package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/morvin2701/pixelwalls/internal/client/client"
	"github.com/morvin2701/pixelwalls/internal/logging"
	"github.com/morvin2701/pixelwalls/internal/netx"
)

// MaxImageSize bounds the images accepted by Store.
const MaxImageSize = 16 << 20

var (
	ErrNotAnImage   = errors.New("file is not an image")
	ErrImageTooBig  = errors.New("image is too big")
	ErrBadDataURI   = errors.New("malformed data uri")
	dataURIPrefix   = "data:"
	base64Separator = ";base64,"
)

// ImageService turns image bytes into a wallpaper url and back.
type ImageService struct {
	client client.Client
	logger logging.Logger
}

// NewImageService builds an ImageService. client may be nil, in which case
// every image is stored inline as a data uri.
func NewImageService(c client.Client, logger logging.Logger) *ImageService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ImageService{client: c, logger: logger}
}

// StoreFile reads path and passes its contents to Store.
func (s *ImageService) StoreFile(ctx context.Context, path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat error: %w", err)
	}
	if fi.Size() > MaxImageSize {
		return "", ErrImageTooBig
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read error: %w", err)
	}
	return s.Store(ctx, data)
}

// Store returns a url for data. When the server session is live the image is
// uploaded to object storage and its public url is returned; otherwise, or if
// the upload fails, a data uri is returned.
func (s *ImageService) Store(ctx context.Context, data []byte) (string, error) {
	if len(data) > MaxImageSize {
		return "", ErrImageTooBig
	}
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	if s.client != nil && s.client.Authenticated() {
		url, err := s.upload(ctx, data, contentType)
		if err == nil {
			return url, nil
		}
		s.logger.Warn(ctx, "image upload failed, storing inline", "error", err)
	}

	return EncodeDataURI(contentType, data), nil
}

func (s *ImageService) upload(ctx context.Context, data []byte, contentType string) (string, error) {
	target, err := s.client.GetUploadURL(ctx, contentType)
	if err != nil {
		return "", fmt.Errorf("get upload url error: %w", err)
	}
	if err := netx.UploadToS3PresignedURL(ctx, target.UploadURL, data, contentType); err != nil {
		return "", err
	}
	s.logger.Debug(ctx, "image uploaded", "key", target.Key)
	return target.PublicURL, nil
}

// Download resolves a wallpaper url to image bytes.
func (s *ImageService) Download(ctx context.Context, url string) ([]byte, error) {
	if strings.HasPrefix(url, dataURIPrefix) {
		_, data, err := DecodeDataURI(url)
		return data, err
	}
	return netx.Download(ctx, url)
}

// EncodeDataURI builds a base64 data uri.
func EncodeDataURI(contentType string, data []byte) string {
	return dataURIPrefix + contentType + base64Separator + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURI splits a base64 data uri into its media type and payload.
func DecodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, dataURIPrefix)
	if !ok {
		return "", nil, ErrBadDataURI
	}
	contentType, payload, ok := strings.Cut(rest, base64Separator)
	if !ok {
		return "", nil, ErrBadDataURI
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBadDataURI, err)
	}
	return contentType, data, nil
}
