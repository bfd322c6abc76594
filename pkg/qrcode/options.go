package qrcode

import (
	"image"
	"image/color"
)

// DefaultBoxSize is the rendered width and height of a single QR module in
// pixels.
const DefaultBoxSize = 10

// QuietZone is the number of blank modules padding the symbol on every side.
// It is part of the QR specification and is always rendered.
const QuietZone = 4

type config struct {
	boxSize    int
	foreground color.Color
	background color.Color
	logo       image.Image
}

func defaultConfig() *config {
	return &config{
		boxSize:    DefaultBoxSize,
		foreground: color.RGBA{A: 255},
		background: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// Option configures QR code generation.
type Option func(*config)

// WithForeground sets the color of set modules. Defaults to black.
func WithForeground(c color.Color) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.foreground = c
		}
	}
}

// WithBackground sets the color of unset modules and the quiet zone.
// Defaults to white.
func WithBackground(c color.Color) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.background = c
		}
	}
}

// WithBoxSize overrides the rendered module size in pixels. Non-positive
// values are ignored.
func WithBoxSize(px int) Option {
	return func(cfg *config) {
		if px > 0 {
			cfg.boxSize = px
		}
	}
}

// WithLogo overlays the given image centered on the generated QR code. The
// logo is stretched to a quarter of the image's width and height and pasted
// using its alpha channel as the transparency mask.
func WithLogo(logo image.Image) Option {
	return func(cfg *config) {
		cfg.logo = logo
	}
}
