// Package qrcode renders QR code images with configurable colors and an
// optional centered logo overlay.
//
// The package wraps github.com/skip2/go-qrcode for the actual QR encoding and
// adds color-aware rasterization and logo compositing on top.
//
// # Architecture
//
// Generate is the single entry point. It encodes the content into the
// smallest symbol that fits, rasterizes the module matrix at a fixed pixel
// size per module with a 4-module quiet zone, and, when a logo is supplied,
// stretches it to a quarter of the image's linear size and pastes it centered
// using the logo's own alpha channel as the mask.
//
// The error correction level is pinned at the highest standard tier (~30% of
// modules recoverable). That headroom is what keeps the symbol scannable
// underneath the logo, so the level is not configurable.
//
// # Usage
//
//	img, err := qrcode.Generate("https://example.com",
//		qrcode.WithForeground(color.RGBA{A: 255}),
//		qrcode.WithBackground(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
//	)
//
// # Error Handling
//
// Sentinel errors are declared as package-level variables and can be matched
// with errors.Is:
//
//   - ErrEmptyContent      – the content argument was empty.
//   - ErrCapacityExceeded  – the content does not fit the largest symbol.
//   - ErrInvalidLogo       – a logo reader did not contain a decodable image.
package qrcode
