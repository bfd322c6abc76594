package colorx

import "errors"

var (
	// ErrInvalidColorFormat is returned when a color string matches neither the
	// #RRGGBB hex shape nor the rgba(r,g,b,a) shape, or when a channel value is
	// out of range.
	ErrInvalidColorFormat = errors.New("invalid color format")
)
