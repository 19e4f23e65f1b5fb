package rast

import "github.com/chewxy/math32"

// EdgeFunction evaluates cross(b-a, p-a): the signed, area-scaled offset of
// point p from the directed line a→b. In the y-down screen coordinate system
// the result is positive when p lies to the geometric right of the line.
func EdgeFunction(a, b, p Vec2) float32 {
	return b.Sub(a).Cross(p.Sub(a))
}

// SignedArea returns twice the signed area of the triangle (v0, v1, v2).
// The sign encodes winding order: positive for clockwise in the y-down
// screen convention, negative for counter-clockwise.
func SignedArea(v0, v1, v2 Vec2) float32 {
	return EdgeFunction(v0, v1, v2)
}

// bboxClamped computes the integer pixel range covered by the triangle,
// [minX..maxX] × [minY..maxY], using floor(min) and ceil(max)-1 so that the
// range is tight for center sampling at (x+0.5, y+0.5). Each bound is then
// clamped into the target dimensions without reordering: a triangle fully
// outside the target (or a zero-sized target) yields minX > maxX or
// minY > maxY, which callers treat as an empty range.
func bboxClamped(p0, p1, p2 Vec2, width, height int) (minX, minY, maxX, maxY int) {
	minX = int(math32.Floor(math32.Min(p0.X, math32.Min(p1.X, p2.X))))
	minY = int(math32.Floor(math32.Min(p0.Y, math32.Min(p1.Y, p2.Y))))
	maxX = int(math32.Ceil(math32.Max(p0.X, math32.Max(p1.X, p2.X)))) - 1
	maxY = int(math32.Ceil(math32.Max(p0.Y, math32.Max(p1.Y, p2.Y)))) - 1

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > width-1 {
		maxX = width - 1
	}
	if maxY > height-1 {
		maxY = height - 1
	}
	return minX, minY, maxX, maxY
}

// isTopLeft classifies the edge a→b under the top-left fill rule, in y-down
// screen space: "left" when the edge points up (dy < 0), "top" when it is
// horizontal and points right (dy == 0, dx > 0). Pixels exactly on a
// top-left edge belong to the triangle; on any other edge they do not, so
// two triangles sharing an edge paint the shared pixels exactly once.
func isTopLeft(a, b Vec2) bool {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dy < 0 || (dy == 0 && dx > 0)
}
