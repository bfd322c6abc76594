package qrcode_test

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/dmitrymomot/qrgen/pkg/qrcode"

	"github.com/makiuchi-d/gozxing"
	zxqrcode "github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeQR scans a generated image back into its payload.
func decodeQR(t *testing.T, img image.Image) string {
	t.Helper()
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	require.NoError(t, err, "should build a bitmap from the generated image")
	result, err := zxqrcode.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err, "generated image should contain a decodable QR code")
	return result.GetText()
}

func TestGenerate(t *testing.T) {
	t.Parallel()
	t.Run("returns error when content is empty", func(t *testing.T) {
		t.Parallel()
		img, err := qrcode.Generate("")

		require.Error(t, err)
		require.Nil(t, img)
		assert.True(t, errors.Is(err, qrcode.ErrEmptyContent), "error should be ErrEmptyContent")
	})

	t.Run("returns error when content is whitespace only", func(t *testing.T) {
		t.Parallel()
		img, err := qrcode.Generate("   \t\n")

		require.Error(t, err)
		require.Nil(t, img)
		assert.True(t, errors.Is(err, qrcode.ErrEmptyContent), "error should be ErrEmptyContent")
	})

	t.Run("image side is a whole number of quiet-zone padded modules", func(t *testing.T) {
		t.Parallel()
		img, err := qrcode.Generate("https://example.com")
		require.NoError(t, err)

		b := img.Bounds()
		require.Equal(t, b.Dx(), b.Dy(), "QR images are square")
		require.Zero(t, b.Dx()%qrcode.DefaultBoxSize,
			"side length should be a multiple of the module box size")

		// Total modules include the quiet zone on both sides; the symbol
		// itself is 21 + 4k modules wide for version k+1.
		symbol := b.Dx()/qrcode.DefaultBoxSize - 2*qrcode.QuietZone
		assert.GreaterOrEqual(t, symbol, 21)
		assert.Zero(t, (symbol-21)%4, "symbol side should match a valid QR version")
	})

	t.Run("round trips the payload through a decoder", func(t *testing.T) {
		t.Parallel()
		const payload = "https://example.com"
		img, err := qrcode.Generate(payload)
		require.NoError(t, err)

		assert.Equal(t, payload, decodeQR(t, img), "decoded payload should match the input exactly")
	})

	t.Run("is deterministic for identical input", func(t *testing.T) {
		t.Parallel()
		first, err := qrcode.Generate("hello world", qrcode.WithForeground(color.RGBA{R: 16, G: 32, B: 64, A: 255}))
		require.NoError(t, err)
		second, err := qrcode.Generate("hello world", qrcode.WithForeground(color.RGBA{R: 16, G: 32, B: 64, A: 255}))
		require.NoError(t, err)

		a, ok := first.(*image.RGBA)
		require.True(t, ok, "generated image should be an RGBA raster")
		b, ok := second.(*image.RGBA)
		require.True(t, ok)

		assert.Equal(t, a.Bounds(), b.Bounds())
		assert.Equal(t, a.Pix, b.Pix, "identical input should yield pixel-identical output")
	})

	t.Run("renders set modules in the foreground color", func(t *testing.T) {
		t.Parallel()
		fill := color.RGBA{R: 255, A: 255}
		back := color.RGBA{R: 255, G: 255, B: 255, A: 255}
		img, err := qrcode.Generate("hello", qrcode.WithForeground(fill), qrcode.WithBackground(back))
		require.NoError(t, err)

		rgba := img.(*image.RGBA)
		seenFill, seenBack := false, false
		b := rgba.Bounds()
		for y := b.Min.Y; y < b.Max.Y && !(seenFill && seenBack); y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				switch rgba.RGBAAt(x, y) {
				case fill:
					seenFill = true
				case back:
					seenBack = true
				default:
					t.Fatalf("pixel (%d,%d) is %v, expected only fill or back colors", x, y, rgba.RGBAAt(x, y))
				}
			}
		}
		assert.True(t, seenFill, "at least one module should be set")
		assert.True(t, seenBack, "the quiet zone should use the background color")

		assert.Equal(t, "hello", decodeQR(t, img), "colored QR should still decode")
	})

	t.Run("respects a custom box size", func(t *testing.T) {
		t.Parallel()
		small, err := qrcode.Generate("hello", qrcode.WithBoxSize(1))
		require.NoError(t, err)
		large, err := qrcode.Generate("hello", qrcode.WithBoxSize(10))
		require.NoError(t, err)

		assert.Equal(t, small.Bounds().Dx()*10, large.Bounds().Dx(),
			"image side should scale linearly with box size")
	})

	t.Run("accepts content near the symbol capacity", func(t *testing.T) {
		t.Parallel()
		// Version 40 at the highest correction level holds 1273 bytes.
		img, err := qrcode.Generate(strings.Repeat("a", 1000))
		require.NoError(t, err, "1000 bytes should fit the largest symbol")
		require.NotNil(t, img)
	})

	t.Run("fails with ErrCapacityExceeded beyond the symbol capacity", func(t *testing.T) {
		t.Parallel()
		img, err := qrcode.Generate(strings.Repeat("a", 4000))

		require.Error(t, err)
		require.Nil(t, img)
		assert.True(t, errors.Is(err, qrcode.ErrCapacityExceeded),
			"error should be ErrCapacityExceeded")
	})
}
