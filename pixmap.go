package rast

import "image"

// Pixmap represents a rectangular pixel buffer: width×height packed RGBA
// words, row-major, top-left origin. It is the drawing target of the
// triangle rasterizer and the input of the image encoders.
//
// A Pixmap is not safe for concurrent mutation; the caller owns it
// exclusively for the duration of a draw call.
type Pixmap struct {
	width  int
	height int
	pix    []uint32 // packed RGBA little-endian, one word per pixel
}

// NewPixmap creates a new pixmap with the given dimensions, cleared to
// transparent black. Non-positive dimensions yield an empty pixmap that
// accepts no writes.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]uint32, width*height),
	}
}

// Width returns the width of the pixmap in pixels.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap in pixels.
func (p *Pixmap) Height() int {
	return p.height
}

// Pix returns the raw packed pixel words. The slice aliases the pixmap's
// backing store; it is consumed by the image encoders.
func (p *Pixmap) Pix() []uint32 {
	return p.pix
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates are
// silently ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.pix[y*p.width+x] = c.Pack()
}

// GetPixel returns the color of a single pixel. The second return value is
// false if the coordinates are out of range.
func (p *Pixmap) GetPixel(x, y int) (Color, bool) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Color{}, false
	}
	return UnpackColor(p.pix[y*p.width+x]), true
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	v := c.Pack()
	for i := range p.pix {
		p.pix[i] = v
	}
}

// ToImage converts the pixmap to an image.RGBA for use with the standard
// image encoders.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, v := range p.pix {
		img.Pix[i*4+0] = uint8(v)
		img.Pix[i*4+1] = uint8(v >> 8)
		img.Pix[i*4+2] = uint8(v >> 16)
		img.Pix[i*4+3] = uint8(v >> 24)
	}
	return img
}
