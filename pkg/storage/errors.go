package storage

import "errors"

var (
	// Configuration errors
	ErrInvalidConfig = errors.New("invalid storage configuration")

	// Validation errors
	ErrNilImage        = errors.New("image is nil")
	ErrInvalidFilename = errors.New("invalid artifact filename") // Prevents path traversal

	// I/O errors
	ErrArtifactNotFound        = errors.New("artifact not found")
	ErrFailedToWriteArtifact   = errors.New("failed to write artifact")
	ErrFailedToReadArtifact    = errors.New("failed to read artifact")
	ErrFailedToCreateDirectory = errors.New("failed to create storage directory")

	// S3-specific errors for proper error classification
	ErrBucketNotFound = errors.New("bucket not found")
	ErrAccessDenied   = errors.New("access denied")
)
