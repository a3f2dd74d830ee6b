// Package graphics provides the color and window-geometry value types shared
// by the startup pipeline: the ARGB color stored in the persisted frame record
// and the integer rectangles used for window placement.
package graphics

import "image/color"

// Color is stored as ARGB (0xAARRGGBB), matching the persisted frame record's
// color field bit for bit.
type Color uint32

// ARGB constructs a Color from a raw 0xAARRGGBB value.
func ARGB(v uint32) Color {
	return Color(v)
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// Alpha returns the alpha byte.
func (c Color) Alpha() uint8 {
	return uint8(c >> 24)
}

// Red returns the red byte.
func (c Color) Red() uint8 {
	return uint8(c >> 16)
}

// Green returns the green byte.
func (c Color) Green() uint8 {
	return uint8(c >> 8)
}

// Blue returns the blue byte.
func (c Color) Blue() uint8 {
	return uint8(c)
}

// IsOpaque returns true if the alpha byte is 0xFF.
func (c Color) IsOpaque() bool {
	return c.Alpha() == 0xFF
}

// WithAlpha returns a copy of the color with the given alpha byte.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts the color to the stdlib non-premultiplied form, for painting
// through image/draw based backends.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.Red(), G: c.Green(), B: c.Blue(), A: c.Alpha()}
}
