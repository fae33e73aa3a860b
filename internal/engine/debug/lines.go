// Package debug draws diagnostic overlays and captures screenshots.
package debug

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/model"
)

// BoxVertexCount is the number of line vertices of a box wireframe (12 edges × 2).
const BoxVertexCount = 24

// BoundsLines returns the 12 edges of b as line vertices, [x, y, z] per
// vertex. An empty box yields nil.
func BoundsLines(b model.Bounds) []float32 {
	if b.IsEmpty() {
		return nil
	}
	minX, minY, minZ := b.Min[0], b.Min[1], b.Min[2]
	maxX, maxY, maxZ := b.Max[0], b.Max[1], b.Max[2]
	return []float32{
		// Bottom
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Sides
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// WalkLines outlines every walkable triangle, lifted by lift along Y so
// the lines do not fight the deck for depth.
func WalkLines(tris []model.WalkTriangle, lift float32) []float32 {
	if len(tris) == 0 {
		return nil
	}
	up := mgl32.Vec3{0, lift, 0}
	out := make([]float32, 0, len(tris)*18)
	for _, t := range tris {
		a, b, c := t.V0.Add(up), t.V1.Add(up), t.V2.Add(up)
		for _, edge := range [3][2]mgl32.Vec3{{a, b}, {b, c}, {c, a}} {
			out = append(out, edge[0][:]...)
			out = append(out, edge[1][:]...)
		}
	}
	return out
}
