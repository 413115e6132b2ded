package media

import (
	"context"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Local stores media in a directory.
type Local struct {
	fs        afero.Fs
	urlPrefix string
}

// NewLocal returns a store rooted at dir on the os file system.
func NewLocal(dir, urlPrefix string) *Local {
	return NewLocalFs(afero.NewBasePathFs(afero.NewOsFs(), dir), urlPrefix)
}

// NewLocalFs returns a store on fs.
func NewLocalFs(fs afero.Fs, urlPrefix string) *Local {
	if urlPrefix == "" {
		urlPrefix = "/media/"
	}

	return &Local{fs: fs, urlPrefix: urlPrefix}
}

// Save implements Store.
func (l *Local) Save(_ context.Context, dir, filename string, r io.Reader, _ string) (string, error) {
	key := newKey(dir, filename)

	if err := l.fs.MkdirAll(path.Dir(fsPath(key)), 0o750); err != nil { //nolint:mnd
		return "", errors.Wrap(err, "can't create media directory")
	}

	if err := afero.WriteReader(l.fs, fsPath(key), r); err != nil {
		return "", errors.Wrap(err, "can't write media file")
	}

	return key, nil
}

// Delete implements Store.
func (l *Local) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if err := l.fs.Remove(fsPath(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "can't delete media file")
	}

	return nil
}

// URL implements Store.
func (l *Local) URL(key string) string {
	return joinURL(l.urlPrefix, key)
}

// FileSystem exposes the stored files for the static file handler.
func (l *Local) FileSystem() http.FileSystem {
	return afero.NewHttpFs(l.fs)
}

// fsPath roots key so it resolves the same on every afero backend.
func fsPath(key string) string {
	return "/" + strings.TrimLeft(key, "/")
}
