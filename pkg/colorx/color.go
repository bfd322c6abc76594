package colorx

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// kind discriminates the two internal representations of a Color.
type kind uint8

const (
	kindHex kind = iota
	kindRGB
)

// Color is a normalized color value. It is either a hex string carried
// verbatim or a concrete RGB triple. The zero value is an empty hex color,
// which fails RGBA with ErrInvalidColorFormat.
type Color struct {
	kind kind
	hex  string
	r    uint8
	g    uint8
	b    uint8
}

// RGB returns a Color holding concrete channel values.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// Hex returns a Color carrying the given hex string verbatim. The string is
// validated lazily, when RGBA is called.
func Hex(s string) Color {
	return Color{kind: kindHex, hex: s}
}

// Parse normalizes a user-supplied color string.
//
// Strings starting with "#" are kept verbatim as hex colors. Strings starting
// with "rgba" are parsed: the first three components become the RGB channels
// (float values are truncated) and the alpha component is discarded. Anything
// else passes through as a hex color and is validated only when channel
// access is needed, so callers that feed the value back to a hex-consuming
// sink never see an error for formats they consider valid.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "rgba") {
		return parseRGBA(s)
	}
	return Hex(s), nil
}

// parseRGBA extracts the RGB channels from an "rgba(r, g, b, a)" string.
// Wrong component count, non-numeric components, and channels outside
// [0, 255] all yield ErrInvalidColorFormat instead of a garbled color.
func parseRGBA(s string) (Color, error) {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < open {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	parts := strings.Split(s[open+1:close], ",")
	if len(parts) != 4 {
		return Color{}, fmt.Errorf("%w: expected 4 components, got %d", ErrInvalidColorFormat, len(parts))
	}

	var ch [3]uint8
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return Color{}, fmt.Errorf("%w: component %q is not numeric", ErrInvalidColorFormat, strings.TrimSpace(parts[i]))
		}
		v := int(f) // truncate, matching int() semantics of the picker values
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w: component %d out of range [0,255]", ErrInvalidColorFormat, v)
		}
		ch[i] = uint8(v)
	}
	// parts[3] is the alpha component; it is intentionally discarded.

	return RGB(ch[0], ch[1], ch[2]), nil
}

// RGBA reduces the color to concrete 8-bit channels with full opacity.
// Hex colors must be exactly "#RRGGBB"; anything else fails with
// ErrInvalidColorFormat.
func (c Color) RGBA() (color.RGBA, error) {
	if c.kind == kindRGB {
		return color.RGBA{R: c.r, G: c.g, B: c.b, A: 255}, nil
	}

	s := c.hex
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	r, err1 := strconv.ParseUint(s[1:3], 16, 8)
	g, err2 := strconv.ParseUint(s[3:5], 16, 8)
	b, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

// String returns the hex string for hex colors and "rgb(r,g,b)" for RGB
// colors.
func (c Color) String() string {
	if c.kind == kindRGB {
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	}
	return c.hex
}
