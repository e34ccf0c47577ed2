package draw

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque 24-bit RGB color. It satisfies image/color.Color.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	White = Color{R: 255, G: 255, B: 255}
	Black = Color{}
)

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// ParseColor parses a "#rrggbb" or "#rgb" hex string.
func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseColor is ParseColor for values already validated elsewhere.
func MustParseColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
