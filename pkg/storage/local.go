package storage

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on the local filesystem. All artifacts live
// directly under baseDir. Safe for concurrent use: every Save targets a fresh
// random name and becomes visible only through an atomic rename.
type LocalStorage struct {
	baseDir string // absolute path, created on construction
	baseURL string // URL prefix for serving artifacts (e.g. "/files/")
}

// NewLocalStorage creates a local artifact store rooted at baseDir. The
// directory is resolved to an absolute path and created if missing. baseURL
// is the public prefix used by URL.
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := os.MkdirAll(absBaseDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateDirectory, err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &LocalStorage{baseDir: absBaseDir, baseURL: baseURL}, nil
}

// Save encodes img as PNG under a fresh unique name. The bytes are written to
// a temporary file first and renamed into place, so a write failure never
// leaves a partial artifact behind under its final name.
func (s *LocalStorage) Save(ctx context.Context, img image.Image) (*Artifact, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if img == nil {
		return nil, ErrNilImage
	}

	id, filename := newArtifactName()
	finalPath := filepath.Join(s.baseDir, filename)
	tmpPath := finalPath + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteArtifact, err)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteArtifact, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteArtifact, err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteArtifact, err)
	}

	info, err := os.Stat(finalPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWriteArtifact, err)
	}

	return &Artifact{
		ID:       id,
		Filename: filename,
		Path:     finalPath,
		URL:      s.URL(filename),
		Size:     info.Size(),
	}, nil
}

// Open returns a reader for a stored artifact. Filenames that do not match
// the generated pattern are rejected, which keeps reads confined to baseDir.
func (s *LocalStorage) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if err := validateFilename(filename); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, filename)
		}
		return nil, fmt.Errorf("%w: %v", ErrFailedToReadArtifact, err)
	}
	return f, nil
}

// Exists reports whether the artifact is present on disk.
func (s *LocalStorage) Exists(ctx context.Context, filename string) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}

	if validateFilename(filename) != nil {
		return false
	}
	_, err := os.Stat(filepath.Join(s.baseDir, filename))
	return err == nil
}

// URL returns the public URL for an artifact filename.
func (s *LocalStorage) URL(filename string) string {
	return s.baseURL + filename
}

// Dir returns the absolute base directory. Exposed for logging and tests.
func (s *LocalStorage) Dir() string {
	return s.baseDir
}
