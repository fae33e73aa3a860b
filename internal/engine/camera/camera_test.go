package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/model"
)

// vecNear compares within an absolute distance. mgl32's ApproxEqualThreshold
// squares the threshold when a component is zero, which rejects ordinary
// sin/cos residue.
func vecNear(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() <= tol
}

func TestNewFPSCamera(t *testing.T) {
	c := NewFPSCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, -10})

	if !vecNear(c.Front, mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("expected front (0,0,-1), got %v", c.Front)
	}
	if !mgl32.FloatEqualThreshold(c.Yaw, -90, 1e-4) {
		t.Errorf("expected yaw -90, got %f", c.Yaw)
	}
	if c.Pitch != 0 {
		t.Errorf("expected pitch 0, got %f", c.Pitch)
	}
}

func TestFPSCamera_Move(t *testing.T) {
	tests := []struct {
		dir  Direction
		want mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, 1}},
		{Backward, mgl32.Vec3{0, 0, 5}},
		{Left, mgl32.Vec3{-2, 0, 3}},
		{Right, mgl32.Vec3{2, 0, 3}},
	}
	for _, tt := range tests {
		c := NewFPSCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, -10})
		c.Move(tt.dir, 2)
		if !vecNear(c.Position, tt.want, 1e-5) {
			t.Errorf("direction %d: expected %v, got %v", tt.dir, tt.want, c.Position)
		}
	}
}

func TestFPSCamera_PitchClamp(t *testing.T) {
	c := NewFPSCamera(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})

	c.Rotate(0, 500)
	if c.Pitch != MaxPitch {
		t.Errorf("expected pitch %v, got %f", MaxPitch, c.Pitch)
	}
	c.Rotate(0, -1000)
	if c.Pitch != -MaxPitch {
		t.Errorf("expected pitch %v, got %f", -MaxPitch, c.Pitch)
	}
	if f := c.FlatFront(); !vecNear(f, mgl32.Vec3{1, 0, 0}, 1e-4) {
		t.Errorf("expected flat front (1,0,0), got %v", f)
	}
}

func TestFPSCamera_Rotate(t *testing.T) {
	c := NewFPSCamera(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
	c.Rotate(90, 0)
	if !vecNear(c.Front, mgl32.Vec3{0, 0, 1}, 1e-5) {
		t.Errorf("expected front (0,0,1) after 90 degrees, got %v", c.Front)
	}
	if r := c.Right(); !vecNear(r, mgl32.Vec3{-1, 0, 0}, 1e-5) {
		t.Errorf("expected right (-1,0,0), got %v", r)
	}
}

func TestFPSCamera_ViewMatrix(t *testing.T) {
	c := NewFPSCamera(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, -10})
	v := c.ViewMatrix()

	// The camera position maps to the view-space origin.
	got := mgl32.TransformCoordinate(c.Position, v)
	if !vecNear(got, mgl32.Vec3{}, 1e-5) {
		t.Errorf("expected origin, got %v", got)
	}
	// A point ahead lands on -Z.
	ahead := mgl32.TransformCoordinate(c.Position.Add(c.Front.Mul(5)), v)
	if !vecNear(ahead, mgl32.Vec3{0, 0, -5}, 1e-4) {
		t.Errorf("expected (0,0,-5), got %v", ahead)
	}
}

func TestOrbitCamera_FitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	b := model.Bounds{Min: mgl32.Vec3{-10, 0, -4}, Max: mgl32.Vec3{10, 6, 4}}
	c.FitToBounds(b)

	if c.Center != b.Center() {
		t.Errorf("expected center %v, got %v", b.Center(), c.Center)
	}
	if d := c.Position().Sub(c.Center).Len(); d <= b.Radius() {
		t.Errorf("expected the camera outside the bounds radius %f, got distance %f", b.Radius(), d)
	}

	before := *c
	c.FitToBounds(model.EmptyBounds())
	if *c != before {
		t.Error("expected empty bounds to leave the camera unchanged")
	}
}

func TestOrbitCamera_Clamps(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.RotationX != c.MaxPitch {
		t.Errorf("expected pitch %f, got %f", c.MaxPitch, c.RotationX)
	}
	for i := 0; i < 200; i++ {
		c.HandleZoom(1)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("expected distance %f, got %f", c.MinDistance, c.Distance)
	}
	if p := c.Position(); math.IsNaN(float64(p[0])) {
		t.Errorf("expected a finite position, got %v", p)
	}
}
