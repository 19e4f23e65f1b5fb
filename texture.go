package rast

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Texture is an immutable width×height grid of packed RGBA words, row-major,
// top-left origin, sharing the channel layout of [Pixmap]. A texture is
// constructed once and may be sampled by any number of draw calls; concurrent
// reads are safe because nothing mutates it after construction.
type Texture struct {
	width  int
	height int
	pix    []uint32
}

// NewTexture creates a texture from packed little-endian RGBA words.
// The pixels slice is retained, not copied.
//
// NewTexture panics if width or height is not positive or if len(pixels)
// does not equal width*height: these indicate a programming error, so they
// fail loudly at construction time rather than at first sample.
func NewTexture(pixels []uint32, width, height int) *Texture {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("rast: texture dimensions must be positive, got %dx%d", width, height))
	}
	if len(pixels) != width*height {
		panic(fmt.Sprintf("rast: texture buffer has %d pixels, want %d (%dx%d)",
			len(pixels), width*height, width, height))
	}
	return &Texture{width: width, height: height, pix: pixels}
}

// Width returns the texture width in texels.
func (t *Texture) Width() int {
	return t.width
}

// Height returns the texture height in texels.
func (t *Texture) Height() int {
	return t.height
}

// SampleNearest returns the texel nearest to the texture coordinate (u, v).
// Coordinates are clamped independently into [0,1] before the lookup, so
// addressing is edge-clamp, not wrap.
func (t *Texture) SampleNearest(u, v float32) Color {
	u = clamp01(u)
	v = clamp01(v)

	w := float32(t.width)
	h := float32(t.height)
	tx := int(math32.Min(math32.Floor(u*(w-1)+0.5), w-1))
	ty := int(math32.Min(math32.Floor(v*(h-1)+0.5), h-1))

	return UnpackColor(t.pix[ty*t.width+tx])
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
