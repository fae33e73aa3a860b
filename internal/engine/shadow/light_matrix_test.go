package shadow

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/model"
)

func TestDirectionalLightMatrix_ContainsBox(t *testing.T) {
	box := model.Bounds{Min: mgl32.Vec3{-12, -2, -30}, Max: mgl32.Vec3{12, 18, 30}}

	tests := []struct {
		name string
		dir  mgl32.Vec3
	}{
		{"default sun", mgl32.Vec3{-0.2, 1, -0.3}},
		{"overhead", mgl32.Vec3{0, 1, 0}},
		{"low sun", mgl32.Vec3{1, 0.1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DirectionalLightMatrix(tt.dir, box)
			for i := 0; i < 8; i++ {
				corner := box.Min
				if i&1 != 0 {
					corner[0] = box.Max[0]
				}
				if i&2 != 0 {
					corner[1] = box.Max[1]
				}
				if i&4 != 0 {
					corner[2] = box.Max[2]
				}
				p := mgl32.TransformCoordinate(corner, m)
				for axis := 0; axis < 3; axis++ {
					if p[axis] < -1 || p[axis] > 1 {
						t.Errorf("corner %v maps outside the light frustum: %v", corner, p)
						break
					}
				}
			}
		})
	}
}

func TestDirectionalLightMatrix_Degenerate(t *testing.T) {
	if m := DirectionalLightMatrix(mgl32.Vec3{0, 1, 0}, model.EmptyBounds()); m != mgl32.Ident4() {
		t.Errorf("expected identity for empty bounds, got %v", m)
	}
	box := model.Bounds{Max: mgl32.Vec3{1, 1, 1}}
	if m := DirectionalLightMatrix(mgl32.Vec3{}, box); m != mgl32.Ident4() {
		t.Errorf("expected identity for a zero light direction, got %v", m)
	}
}
