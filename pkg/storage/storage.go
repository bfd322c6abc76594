package storage

import (
	"context"
	"encoding/hex"
	"fmt"
	"image"
	"io"
	"regexp"

	"github.com/google/uuid"
)

// Artifact describes a persisted QR code image.
type Artifact struct {
	ID       string // 32-character hex form of the random 128-bit identifier
	Filename string // qr_code_<ID>.png
	Path     string // backend-specific location (absolute path or object key)
	URL      string // public URL for serving the artifact
	Size     int64  // encoded size in bytes
}

// Storage persists QR code images under globally unique names.
type Storage interface {
	// Save encodes the image as PNG and persists it under a fresh unique name.
	Save(ctx context.Context, img image.Image) (*Artifact, error)
	// Open returns a reader for a previously saved artifact.
	Open(ctx context.Context, filename string) (io.ReadCloser, error)
	// Exists reports whether the artifact is present.
	Exists(ctx context.Context, filename string) bool
	// URL returns the public URL for an artifact filename.
	URL(filename string) string
}

// artifactNamePattern matches the filenames this package generates. Anything
// else is rejected on read, which doubles as the path traversal guard.
var artifactNamePattern = regexp.MustCompile(`^qr_code_[0-9a-f]{32}\.png$`)

// newArtifactName returns a fresh filename derived from a random 128-bit
// identifier. Collisions are not handled: at 128 bits they are beyond reach.
func newArtifactName() (id, filename string) {
	u := uuid.New()
	id = hex.EncodeToString(u[:])
	return id, fmt.Sprintf("qr_code_%s.png", id)
}

// validateFilename rejects names this package could not have generated.
func validateFilename(filename string) error {
	if !artifactNamePattern.MatchString(filename) {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}
	return nil
}
