// Package source provides document text from local files and URLs.
package source

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrNoMatch           = errors.New("no document matches")
	ErrMultipleDocuments = errors.New("pattern matches more than one document")
	ErrTooLarge          = errors.New("document exceeds size limit")
)

// Auto dispatches http(s) references to an HTTPProvider and everything else to a FileProvider.
type Auto struct {
	Files *FileProvider
	Web   *HTTPProvider
}

func NewAuto(timeout time.Duration, maxBytes int64) *Auto {
	return &Auto{Files: NewFileProvider(), Web: NewHTTPProvider(timeout, maxBytes)}
}

func (a *Auto) Fetch(ctx context.Context, ref string) (string, error) {
	if IsURL(ref) {
		return a.Web.Fetch(ctx, ref)
	}
	return a.Files.Fetch(ctx, ref)
}

// IsURL reports whether ref looks like an http or https URL.
func IsURL(ref string) bool {
	lower := strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
