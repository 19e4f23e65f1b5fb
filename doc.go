// Package rast is a software triangle rasterizer for Go.
//
// # Overview
//
// rast converts triangles described by three vertices (screen-space position,
// texture coordinate, vertex color) into painted pixels on a 2D pixel buffer,
// using edge-function tests with the top-left fill rule and barycentric
// attribute interpolation. Adjacent triangles that share an edge cover every
// pixel of the shared region exactly once, regardless of winding order.
//
// # Quick Start
//
//	import "github.com/gogpu/rast"
//
//	pm := rast.NewPixmap(256, 256)
//	pm.Clear(rast.RGB(12, 12, 24))
//
//	v0 := rast.NewVertex(rast.V3(30, 30, 0))
//	v1 := rast.NewVertex(rast.V3(220, 60, 0))
//	v2 := rast.NewVertex(rast.V3(100, 200, 0))
//	rast.DrawTriangleSolid(pm, v0, v1, v2, rast.RGB(220, 80, 60))
//
//	// Save to PNG
//	rast.SavePNG("triangle.png", pm)
//
// # Shading
//
// Three shading strategies share one scanning core: solid color, per-vertex
// color interpolation, and nearest-neighbor texture sampling. The strategy is
// selected once per triangle; the per-pixel loop stays branch-free. The core
// itself is exposed as [Rasterize] for callers that want a custom per-pixel
// shading callback.
//
// # Scope
//
// Rasterization is purely 2D and affine: no projection, no perspective
// correction, no depth test, no blending (writes are opaque overwrites).
// The Z vertex component and the Pixmap layout leave room for a depth pass
// in a later version.
//
// # Collaborators
//
// The module also ships the plumbing a small software-rendering toolkit
// needs: image encoding (PPM, BMP, PNG), a fixed-timestep update loop
// (fixedloop), a generational object pool (arena), a seeded PRNG (prng),
// and a terminal presentation backend (term).
package rast
