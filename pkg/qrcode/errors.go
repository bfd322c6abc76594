package qrcode

import "errors"

var (
	// ErrEmptyContent is returned when content string is empty or only whitespace.
	ErrEmptyContent = errors.New("content cannot be empty")
	// ErrCapacityExceeded is returned when content does not fit the largest QR
	// symbol at the fixed error correction level.
	ErrCapacityExceeded = errors.New("content exceeds QR code capacity")
	// ErrInvalidLogo is returned when a logo image cannot be decoded.
	ErrInvalidLogo = errors.New("invalid logo image")
)
