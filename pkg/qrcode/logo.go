package qrcode

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	_ "image/gif"  // logo decode support
	_ "image/jpeg" // logo decode support
	_ "image/png"  // logo decode support

	"github.com/nfnt/resize"
)

// DecodeLogo reads a logo image from r. PNG, JPEG, and GIF are supported.
// Undecodable input yields ErrInvalidLogo.
func DecodeLogo(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLogo, err)
	}
	return img, nil
}

// overlayLogo stretches the logo to a quarter of the destination's width and
// height and pastes it centered, honoring the logo's alpha channel so
// transparent regions leave the modules underneath intact.
//
// The 1/4 ratio is fixed: it occludes at most 1/16 of the image area, which
// the highest error correction tier absorbs. The result is not re-scanned
// for decodability.
func overlayLogo(dst *image.RGBA, logo image.Image) {
	b := dst.Bounds()
	w, h := b.Dx()/4, b.Dy()/4
	if w == 0 || h == 0 {
		return
	}

	// Direct stretch, no aspect preservation.
	scaled := toRGBA(resize.Resize(uint(w), uint(h), logo, resize.Lanczos3))

	pos := image.Pt((b.Dx()-w)/2, (b.Dy()-h)/2)
	rect := image.Rectangle{Min: pos, Max: pos.Add(image.Pt(w, h))}
	draw.Draw(dst, rect, scaled, scaled.Bounds().Min, draw.Over)
}

// toRGBA guarantees a four-channel representation regardless of the logo's
// source format, so the paste mask always has an alpha channel to read.
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
