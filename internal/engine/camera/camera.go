// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/galleon/internal/engine/model"
)

// MaxPitch is the pitch limit in degrees; looking straight up or down
// would flip the view.
const MaxPitch = 89.0

// Direction is a movement direction relative to where the camera looks.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

var worldUp = mgl32.Vec3{0, 1, 0}

// FPSCamera is a first-person camera driven by yaw and pitch in degrees.
type FPSCamera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	Yaw   float32
	Pitch float32
}

// NewFPSCamera creates a camera at position looking at target.
func NewFPSCamera(position, target mgl32.Vec3) *FPSCamera {
	c := &FPSCamera{Position: position, Up: worldUp}
	c.LookAt(target)
	return c
}

// LookAt turns the camera towards target, deriving yaw and pitch from it.
func (c *FPSCamera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() == 0 {
		dir = mgl32.Vec3{0, 0, -1}
	}
	dir = dir.Normalize()
	c.Yaw = mgl32.RadToDeg(float32(math.Atan2(float64(dir[2]), float64(dir[0]))))
	c.Pitch = clampPitch(mgl32.RadToDeg(float32(math.Asin(float64(dir[1])))))
	c.updateFront()
}

// Rotate adds yaw and pitch deltas in degrees. Pitch stays within ±MaxPitch.
func (c *FPSCamera) Rotate(yaw, pitch float32) {
	c.Yaw += yaw
	c.Pitch = clampPitch(c.Pitch + pitch)
	c.updateFront()
}

// Move moves the camera by amount along its front or right vector.
func (c *FPSCamera) Move(dir Direction, amount float32) {
	c.Position = c.Position.Add(c.Offset(dir, amount))
}

// Offset returns the displacement Move would apply, without applying it.
func (c *FPSCamera) Offset(dir Direction, amount float32) mgl32.Vec3 {
	switch dir {
	case Forward:
		return c.Front.Mul(amount)
	case Backward:
		return c.Front.Mul(-amount)
	case Left:
		return c.Right().Mul(-amount)
	case Right:
		return c.Right().Mul(amount)
	}
	return mgl32.Vec3{}
}

// Right returns the camera's right vector.
func (c *FPSCamera) Right() mgl32.Vec3 {
	return c.Front.Cross(c.Up).Normalize()
}

// FlatFront returns the front vector projected on the XZ plane, or zero
// when looking straight up or down.
func (c *FPSCamera) FlatFront() mgl32.Vec3 {
	f := mgl32.Vec3{c.Front[0], 0, c.Front[2]}
	if f.Len() < 1e-6 {
		return mgl32.Vec3{}
	}
	return f.Normalize()
}

// ViewMatrix returns the view matrix for this camera.
func (c *FPSCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *FPSCamera) updateFront() {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	c.Front = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

func clampPitch(p float32) float32 {
	return mgl32.Clamp(p, -MaxPitch, MaxPitch)
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	Center mgl32.Vec3

	// Spherical coordinates
	Distance  float32
	RotationX float32 // pitch, radians
	RotationY float32 // yaw, radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates a new orbit camera with default settings.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        20,
		RotationX:       0.5,
		MinDistance:     1,
		MaxDistance:     5000,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	rx, ry := float64(c.RotationX), float64(c.RotationY)
	return c.Center.Add(mgl32.Vec3{
		c.Distance * float32(math.Cos(rx)*math.Sin(ry)),
		c.Distance * float32(math.Sin(rx)),
		c.Distance * float32(math.Cos(rx)*math.Cos(ry)),
	})
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, worldUp)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX = mgl32.Clamp(c.RotationX+deltaY*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = mgl32.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// FitToBounds centers the camera on b, far enough back to see all of it.
// Empty bounds leave the camera unchanged.
func (c *OrbitCamera) FitToBounds(b model.Bounds) {
	if b.IsEmpty() {
		return
	}
	c.Center = b.Center()
	c.Distance = mgl32.Clamp(b.Radius()*2.5, c.MinDistance, c.MaxDistance)
	c.RotationX = 0.6 // ~35 degrees down
	c.RotationY = 0
}
