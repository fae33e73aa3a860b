package shadow

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/model"
)

// DirectionalLightMatrix returns the light view-projection that fits the
// world-space box in an orthographic frustum. lightDir points towards the
// light and need not be normalized.
func DirectionalLightMatrix(lightDir mgl32.Vec3, box model.Bounds) mgl32.Mat4 {
	if box.IsEmpty() || lightDir.Len() == 0 {
		return mgl32.Ident4()
	}
	dir := lightDir.Normalize()
	center := box.Center()
	radius := max(box.Radius(), 1e-3)

	distance := radius * 2
	eye := center.Add(dir.Mul(distance))

	up := mgl32.Vec3{0, 1, 0}
	if abs32(dir[1]) > 0.99 {
		up = mgl32.Vec3{0, 0, 1}
	}
	view := mgl32.LookAtV(eye, center, up)

	half := radius * 1.1
	proj := mgl32.Ortho(-half, half, -half, half, 0.1, distance+half)
	return proj.Mul4(view)
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
