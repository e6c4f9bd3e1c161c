// Package uploads stores uploaded image binaries on disk. The catalog only
// ever sees the generated filename this package returns, never raw bytes.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"gallery/internal/apperror"

	"github.com/google/uuid"
)

// MaxUploadBytes is the size ceiling for a single uploaded image.
const MaxUploadBytes = 5 * 1024 * 1024

// extensions maps the accepted content types to their on-disk extension.
var extensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
}

// Store writes uploaded files into a single directory.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a Store for it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *Store) Dir() string {
	return s.dir
}

// Save validates the uploaded file (PNG/JPEG only, size ceiling) and writes
// it under a freshly generated filename, which it returns.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadBytes {
		return "", apperror.Newf(apperror.Validation, "image exceeds the %d byte limit", MaxUploadBytes)
	}

	ext, ok := extensions[file.Header.Get("Content-Type")]
	if !ok {
		return "", apperror.Newf(apperror.Validation, "unsupported image type %q", file.Header.Get("Content-Type"))
	}

	src, err := file.Open()
	if err != nil {
		return "", apperror.New(apperror.Infrastructure, "failed to open uploaded file", err)
	}
	defer src.Close()

	name := uuid.New().String() + "." + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", apperror.New(apperror.Infrastructure, "failed to create stored file", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperror.New(apperror.Infrastructure, "failed to write stored file", err)
	}
	return name, nil
}
