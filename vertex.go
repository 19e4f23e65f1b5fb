package rast

// Vertex describes one corner of a triangle. Pos.X and Pos.Y are screen-space
// pixel coordinates (sub-pixel precision allowed); Pos.Z is carried unused,
// reserved for depth. UV is a texture coordinate, nominally in [0,1]. Color
// holds three float channels, nominally in [0,1].
//
// Vertices are plain values, copied per draw call and owned by the caller.
type Vertex struct {
	Pos   Vec3
	UV    Vec2
	Color [3]float32
}

// NewVertex creates a vertex at the given position with a zero texture
// coordinate and white vertex color.
func NewVertex(pos Vec3) Vertex {
	return Vertex{
		Pos:   pos,
		Color: [3]float32{1, 1, 1},
	}
}

// WithUV returns a copy of the vertex with the given texture coordinate.
func (v Vertex) WithUV(u, w float32) Vertex {
	v.UV = V2(u, w)
	return v
}

// WithColor returns a copy of the vertex with the given color channels.
func (v Vertex) WithColor(r, g, b float32) Vertex {
	v.Color = [3]float32{r, g, b}
	return v
}
