package rast

import "github.com/chewxy/math32"

// DegenerateEps is the area tolerance below which a triangle is considered
// degenerate. Triangles with |signed area| <= DegenerateEps paint no pixels.
const DegenerateEps = 1e-6

// ShadeFunc is invoked by Rasterize once per covered pixel with the integer
// pixel coordinates and the normalized barycentric weights of the pixel
// center. The weights a, b, c are associated with v0, v1, v2 respectively
// and sum to approximately 1.
type ShadeFunc func(x, y int, a, b, c float32)

// Rasterize scans the triangle (v0, v1, v2) over a width×height pixel grid
// and calls shade for every covered pixel. Coverage is decided by three
// edge-function tests at the pixel center with the top-left fill rule, so
// triangles sharing an edge cover the shared pixels exactly once, whatever
// winding order the caller uses.
//
// Degenerate triangles, triangles fully outside the grid, and zero-sized
// grids paint nothing; there is no error path for finite input. Non-finite
// coordinates are not guarded against.
func Rasterize(width, height int, v0, v1, v2 Vertex, shade ShadeFunc) {
	p0 := v0.Pos.XY()
	p1 := v1.Pos.XY()
	p2 := v2.Pos.XY()

	area := SignedArea(p0, p1, p2)
	if math32.Abs(area) <= DegenerateEps {
		return
	}

	// Normalize orientation: multiply every edge evaluation by the sign of
	// the area so that "inside" is always non-negative. The top-left flags
	// must be classified on the normalized traversal direction, otherwise
	// boundary pixels would depend on the caller's winding order.
	sign := float32(1)
	if area < 0 {
		sign = -1
	}

	minX, minY, maxX, maxY := bboxClamped(p0, p1, p2, width, height)
	if minX > maxX || minY > maxY {
		return
	}

	tl0 := isTopLeft(p1, p2)
	tl1 := isTopLeft(p2, p0)
	tl2 := isTopLeft(p0, p1)
	if sign < 0 {
		tl0 = isTopLeft(p2, p1)
		tl1 = isTopLeft(p0, p2)
		tl2 = isTopLeft(p1, p0)
	}

	invArea := 1 / (sign * area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := V2(float32(x)+0.5, float32(y)+0.5)

			w0 := sign * EdgeFunction(p1, p2, p)
			w1 := sign * EdgeFunction(p2, p0, p)
			w2 := sign * EdgeFunction(p0, p1, p)

			if !inside(w0, tl0) || !inside(w1, tl1) || !inside(w2, tl2) {
				continue
			}

			shade(x, y, w0*invArea, w1*invArea, w2*invArea)
		}
	}
}

// inside applies the top-left rule: pixels exactly on a top-left edge count
// as covered, pixels on any other edge do not.
func inside(w float32, topLeft bool) bool {
	if topLeft {
		return w >= 0
	}
	return w > 0
}

// DrawTriangleSolid fills the triangle on dst with a single color.
func DrawTriangleSolid(dst *Pixmap, v0, v1, v2 Vertex, c Color) {
	Rasterize(dst.Width(), dst.Height(), v0, v1, v2, func(x, y int, _, _, _ float32) {
		dst.SetPixel(x, y, c)
	})
}

// DrawTriangleVertexColor fills the triangle on dst, interpolating the three
// vertex colors barycentrically. Channels are clamped to [0,1] before
// quantization; the written alpha is always opaque.
func DrawTriangleVertexColor(dst *Pixmap, v0, v1, v2 Vertex) {
	Rasterize(dst.Width(), dst.Height(), v0, v1, v2, func(x, y int, a, b, c float32) {
		dst.SetPixel(x, y, Color{
			R: quantizeChannel(a*v0.Color[0] + b*v1.Color[0] + c*v2.Color[0]),
			G: quantizeChannel(a*v0.Color[1] + b*v1.Color[1] + c*v2.Color[1]),
			B: quantizeChannel(a*v0.Color[2] + b*v1.Color[2] + c*v2.Color[2]),
			A: 255,
		})
	})
}

// DrawTriangleTextured fills the triangle on dst, sampling tex at the
// barycentrically interpolated texture coordinate of each pixel. The
// interpolated coordinate is passed to the sampler unclamped; all clamping
// happens inside SampleNearest.
func DrawTriangleTextured(dst *Pixmap, v0, v1, v2 Vertex, tex *Texture) {
	Rasterize(dst.Width(), dst.Height(), v0, v1, v2, func(x, y int, a, b, c float32) {
		u := a*v0.UV.X + b*v1.UV.X + c*v2.UV.X
		v := a*v0.UV.Y + b*v1.UV.Y + c*v2.UV.Y
		dst.SetPixel(x, y, tex.SampleNearest(u, v))
	})
}

// quantizeChannel maps a float channel nominally in [0,1] to an 8-bit value,
// clamping first so out-of-range interpolation results stay representable.
func quantizeChannel(v float32) uint8 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint8(math32.Round(v * 255))
}
