// Package media stores uploaded photos on the local disk or in an S3 bucket.
package media

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/webfolio/webfolio/internal/config"
	"github.com/webfolio/webfolio/internal/uniuri"
)

// ErrEmptyKey is returned when an operation gets no object key.
var ErrEmptyKey = errors.New("media key is empty")

// Store keeps media objects under relative keys like "projects/abc.jpg".
type Store interface {
	// Save writes r below dir under a fresh random name and returns its key.
	Save(ctx context.Context, dir, filename string, r io.Reader, contentType string) (string, error)
	// Delete removes key. A missing object is not an error.
	Delete(ctx context.Context, key string) error
	// URL returns the public address of key.
	URL(key string) string
}

// New returns the store configured in cfg.
func New(ctx context.Context, cfg config.Media) (Store, error) {
	switch cfg.Backend {
	case config.MediaS3:
		return NewS3(ctx, cfg)
	default:
		return NewLocal(cfg.Path, cfg.URLPrefix), nil
	}
}

func newKey(dir, filename string) string {
	return uniuri.Key(strings.Trim(dir, "/"), filename)
}

func joinURL(prefix, key string) string {
	if key == "" {
		return ""
	}

	return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(key, "/")
}
