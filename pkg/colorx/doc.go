// Package colorx normalizes user-supplied color strings into a form usable by
// image rendering code.
//
// Browsers and form widgets report colors inconsistently: color pickers emit
// hex strings ("#1a2b3c") while some UI toolkits emit CSS-style function
// notation ("rgba(255, 0, 0, 0.5)"). Parse accepts both and returns a Color
// value that can always be reduced to concrete RGB channels.
//
// # Usage
//
//	c, err := colorx.Parse("rgba(255, 0, 0, 1)")
//	if err != nil {
//		// handle ErrInvalidColorFormat
//	}
//	rgba, err := c.RGBA() // color.RGBA{R: 255, A: 255}
//
// The alpha component of rgba(...) input is discarded: normalized colors are
// always fully opaque. Hex input is preserved verbatim and only validated when
// numeric channel access is requested.
package colorx
