package rast

import "image/color"

// Color is a 4-channel 8-bit color. It packs into one 32-bit word in
// little-endian RGBA order, the layout shared by [Pixmap] and [Texture].
// Alpha is carried but never blended: all pixel writes are opaque overwrites.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a color from the four channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGB creates an opaque color from the three channel values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Pack converts the color to a packed little-endian RGBA word.
func (c Color) Pack() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// UnpackColor converts a packed little-endian RGBA word back to a Color.
func UnpackColor(p uint32) Color {
	return Color{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
