package world

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/model"
)

// SpawnPoint picks a model-space spot to stand on: the centroid of the
// walkable triangle nearest the middle of the model in XZ, preferring the
// higher one on a tie. ok is false when nothing is walkable.
func SpawnPoint(m *model.Model) (mgl32.Vec3, bool) {
	center := m.Bounds().Center()
	var best mgl32.Vec3
	bestDist := float32(-1)
	for _, tri := range m.Walkable() {
		c := tri.V0.Add(tri.V1).Add(tri.V2).Mul(1.0 / 3)
		dx, dz := c[0]-center[0], c[2]-center[2]
		d := dx*dx + dz*dz
		if bestDist < 0 || d < bestDist || (d == bestDist && c[1] > best[1]) {
			best, bestDist = c, d
		}
	}
	return best, bestDist >= 0
}
