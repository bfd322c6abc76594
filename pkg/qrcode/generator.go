package qrcode

import (
	"errors"
	"image"
	"image/draw"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Generate encodes content into a QR code image.
//
// The symbol version is auto-selected as the smallest that fits the content
// at the highest error correction level. The returned image is an opaque RGB
// raster whose side length equals (matrix_side + 2*QuietZone) * boxSize.
// Rendering is deterministic: the same content and options always produce a
// pixel-identical image.
func Generate(content string, opts ...Option) (image.Image, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	// Highest tolerates ~30% unreadable modules, which is what makes the
	// centered logo overlay safe.
	qr, err := skipqrcode.New(content, skipqrcode.Highest)
	if err != nil {
		return nil, errors.Join(ErrCapacityExceeded, err)
	}
	qr.ForegroundColor = cfg.foreground
	qr.BackgroundColor = cfg.background

	// A negative size renders boxSize pixels per module instead of fitting a
	// fixed canvas, so no extra padding is introduced around the quiet zone.
	img := flattenRGB(qr.Image(-cfg.boxSize))

	if cfg.logo != nil {
		overlayLogo(img, cfg.logo)
	}

	return img, nil
}

// flattenRGB copies the paletted output of the encoder into an opaque RGBA
// buffer so downstream compositing and encoding always see plain RGB pixels.
func flattenRGB(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
