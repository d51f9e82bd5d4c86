// Package media stores uploaded show images.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"venue-webapp/store"
)

const MaxUploadSize = 5 << 20

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Storage keeps image bytes under a flat name.
type Storage interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) error
	Open(ctx context.Context, name string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, name string) error
}

// NewName builds a storage name for an upload of contentType belonging to
// showID. It fails for content types other than jpeg, png and webp.
func NewName(showID, contentType string) (string, error) {
	ext, ok := extensions[strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))]
	if !ok {
		return "", fmt.Errorf("%v: %w", contentType, store.ErrUnsupportedMediaType)
	}
	return fmt.Sprintf("show-%s-%s%s", showID, uuid.NewString(), ext), nil
}

// URL is the public path an uploaded image is served from.
func URL(name string) string {
	return store.MediaPrefix + name
}

// NameFromURL reverses URL; ok is false for external urls.
func NameFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, store.MediaPrefix) {
		return "", false
	}
	return validName(strings.TrimPrefix(url, store.MediaPrefix))
}

func validName(name string) (string, bool) {
	if name == "" || path.Base(name) != name || strings.HasPrefix(name, ".") {
		return "", false
	}
	return name, true
}

// ContentType guesses the content type of a stored name from its extension.
func ContentType(name string) string {
	ext := path.Ext(name)
	for contentType, e := range extensions {
		if e == ext {
			return contentType
		}
	}
	return "application/octet-stream"
}
