// Package world keeps the player and loose items on the ship's deck.
//
// The deck is a walkable model placed in the world by a Transform. Height
// queries run in the model's own space, so the ship can move and turn
// without rebuilding its walk grid.
package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ground answers height queries in its own (model) space.
// *model.Model satisfies it.
type Ground interface {
	HeightAt(x, z, refY float32) (float32, bool)
}

// Transform places a model in the world: uniform scale, then yaw about
// +Y in degrees, then translation.
type Transform struct {
	Position mgl32.Vec3
	Scale    float32
	Yaw      float32
}

// Matrix returns the model matrix.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Position[0], t.Position[1], t.Position[2]).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Yaw))).
		Mul4(mgl32.Scale3D(t.scale(), t.scale(), t.scale()))
}

// ToWorld maps a model-space point to world space.
func (t Transform) ToWorld(p mgl32.Vec3) mgl32.Vec3 {
	return t.rotate(p.Mul(t.scale()), t.Yaw).Add(t.Position)
}

// ToLocal maps a world-space point to model space.
func (t Transform) ToLocal(p mgl32.Vec3) mgl32.Vec3 {
	return t.rotate(p.Sub(t.Position), -t.Yaw).Mul(1 / t.scale())
}

// scale treats an unset scale as 1.
func (t Transform) scale() float32 {
	if t.Scale == 0 {
		return 1
	}
	return t.Scale
}

func (t Transform) rotate(p mgl32.Vec3, degrees float32) mgl32.Vec3 {
	s, c := math.Sincos(float64(mgl32.DegToRad(degrees)))
	sin, cos := float32(s), float32(c)
	return mgl32.Vec3{
		p[0]*cos + p[2]*sin,
		p[1],
		-p[0]*sin + p[2]*cos,
	}
}

// Deck is a walkable ground placed in the world.
type Deck struct {
	Ground    Ground
	Transform Transform
	// MaxStep is the highest ledge, in world units, a single move may climb.
	MaxStep float32
}

// NewDeck creates a deck for ground placed by t.
func NewDeck(ground Ground, t Transform, maxStep float32) *Deck {
	return &Deck{Ground: ground, Transform: t, MaxStep: maxStep}
}

// HeightAt returns the world-space height of the deck surface below or
// above the world point (x, refY, z) closest to refY.
func (d *Deck) HeightAt(x, z, refY float32) (float32, bool) {
	local := d.Transform.ToLocal(mgl32.Vec3{x, refY, z})
	h, ok := d.Ground.HeightAt(local[0], local[2], local[1])
	if !ok {
		return 0, false
	}
	return d.Transform.ToWorld(mgl32.Vec3{local[0], h, local[2]})[1], true
}

// Step moves feet horizontally to (to.X, to.Z) and snaps them to the
// deck. The move is refused, and feet returned unchanged, when there is
// no deck there or the deck rises more than MaxStep above the feet.
// Dropping down is not limited.
func (d *Deck) Step(feet, to mgl32.Vec3) (mgl32.Vec3, bool) {
	h, ok := d.HeightAt(to[0], to[2], feet[1])
	if !ok || h-feet[1] > d.MaxStep {
		return feet, false
	}
	return mgl32.Vec3{to[0], h, to[2]}, true
}

// Rotate turns the deck by degrees about its origin and returns where a
// point standing on it, such as the player's feet, ends up.
func (d *Deck) Rotate(degrees float32, carried mgl32.Vec3) mgl32.Vec3 {
	local := d.Transform.ToLocal(carried)
	d.Transform.Yaw += degrees
	return d.Transform.ToWorld(local)
}
