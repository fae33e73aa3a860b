package skybox

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFacePaths(t *testing.T) {
	paths := FacePaths("sky", ".png")
	want := []string{"xpos", "xneg", "ypos", "yneg", "zpos", "zneg"}
	for i, name := range want {
		if paths[i] != filepath.Join("sky", name+".png") {
			t.Errorf("face %d: expected %s, got %s", i, filepath.Join("sky", name+".png"), paths[i])
		}
	}
}

func TestSkyView(t *testing.T) {
	view := mgl32.LookAtV(mgl32.Vec3{10, 5, -3}, mgl32.Vec3{10, 5, -13}, mgl32.Vec3{0, 1, 0})
	sky := SkyView(view)

	if sky.Col(3) != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("expected no translation, got %v", sky.Col(3))
	}
	// Directions are rotated like the full view.
	dir := mgl32.Vec4{0, 0, -1, 0}
	if !sky.Mul4x1(dir).ApproxEqual(view.Mul4x1(dir)) {
		t.Errorf("expected rotation to be kept: %v vs %v", sky.Mul4x1(dir), view.Mul4x1(dir))
	}
}

func TestCubeVerticesFaceInwards(t *testing.T) {
	verts := cubeVertices()
	if len(verts) != 36*3 {
		t.Fatalf("expected 108 floats, got %d", len(verts))
	}
	for tri := 0; tri < 12; tri++ {
		v := func(k int) mgl32.Vec3 {
			i := (tri*3 + k) * 3
			return mgl32.Vec3{verts[i], verts[i+1], verts[i+2]}
		}
		a, b, c := v(0), v(1), v(2)
		n := b.Sub(a).Cross(c.Sub(a))
		center := a.Add(b).Add(c).Mul(1.0 / 3)
		if n.Dot(center) >= 0 {
			t.Errorf("triangle %d faces outwards", tri)
		}
	}
}
