package model

import "github.com/go-gl/mathgl/mgl32"

// WalkableNormalY is the minimum Y of a triangle's unit normal for it to
// count as floor (about 53 degrees of slope).
const WalkableNormalY = 0.6

// WalkTriangle is a walkable triangle in model space.
type WalkTriangle struct {
	V0, V1, V2 mgl32.Vec3
}

// Normal returns the unit normal of the counter-clockwise winding, and
// false for a zero-area triangle.
func (t WalkTriangle) Normal() (mgl32.Vec3, bool) {
	n := t.V1.Sub(t.V0).Cross(t.V2.Sub(t.V0))
	l := n.Len()
	if l == 0 {
		return mgl32.Vec3{}, false
	}
	return n.Mul(1 / l), true
}

// heightAt interpolates the triangle's Y at (x, z) when the point lies
// inside its XZ projection, within walkEpsilon.
func (t WalkTriangle) heightAt(x, z float32) (float32, bool) {
	e0x, e0z := t.V1[0]-t.V0[0], t.V1[2]-t.V0[2]
	e1x, e1z := t.V2[0]-t.V0[0], t.V2[2]-t.V0[2]
	px, pz := x-t.V0[0], z-t.V0[2]

	denom := e0x*e1z - e1x*e0z
	if abs32(denom) < walkEpsilon {
		return 0, false
	}

	v := (px*e1z - e1x*pz) / denom
	w := (e0x*pz - px*e0z) / denom
	u := 1 - v - w
	// Only the lower bound is checked; u+v+w == 1 bounds the rest.
	if u < -walkEpsilon || v < -walkEpsilon || w < -walkEpsilon {
		return 0, false
	}
	return u*t.V0[1] + v*t.V1[1] + w*t.V2[1], true
}

// ExtractWalkSurface collects the triangles of meshes that face upward
// enough to stand on. A trailing partial index triple is ignored, as are
// triples that reference missing vertices.
func ExtractWalkSurface(meshes []SubMesh) []WalkTriangle {
	var out []WalkTriangle
	for m := range meshes {
		verts := meshes[m].Vertices
		idx := meshes[m].Indices
		for i := 0; i+2 < len(idx); i += 3 {
			a, b, c := int(idx[i]), int(idx[i+1]), int(idx[i+2])
			if a >= len(verts) || b >= len(verts) || c >= len(verts) {
				continue
			}
			tri := WalkTriangle{V0: verts[a].Position, V1: verts[b].Position, V2: verts[c].Position}
			n, ok := tri.Normal()
			if !ok || !(n[1] >= WalkableNormalY) {
				continue
			}
			out = append(out, tri)
		}
	}
	return out
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
