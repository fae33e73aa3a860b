package world

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Player is the walking viewer. Feet rest on the deck; the camera sits
// EyeHeight above them.
type Player struct {
	Feet      mgl32.Vec3
	EyeHeight float32
}

// Eye returns the camera position.
func (p *Player) Eye() mgl32.Vec3 {
	return p.Feet.Add(mgl32.Vec3{0, p.EyeHeight, 0})
}

// MovementController walks a player across a deck.
type MovementController struct {
	deck   *Deck
	player *Player
	speed  float32 // world units per second

	// Blocked is set when the last move was refused by the deck.
	Blocked bool
}

// NewMovementController creates a new movement controller.
func NewMovementController(deck *Deck, player *Player, speed float32) *MovementController {
	return &MovementController{deck: deck, player: player, speed: speed}
}

// Settle snaps the player onto the deck surface under their XZ position
// that is closest to their current height. It returns false when no deck
// surface is there.
func (mc *MovementController) Settle() bool {
	h, ok := mc.deck.HeightAt(mc.player.Feet[0], mc.player.Feet[2], mc.player.Feet[1])
	if !ok {
		return false
	}
	mc.player.Feet[1] = h
	return true
}

// Update moves the player for dt seconds. forward and right are the
// horizontal view vectors; axisForward and axisRight are in [-1, 1].
func (mc *MovementController) Update(dt float32, forward, right mgl32.Vec3, axisForward, axisRight float32) {
	mc.Blocked = false
	move := forward.Mul(axisForward).Add(right.Mul(axisRight))
	move[1] = 0
	if move.Len() == 0 {
		return
	}
	// Diagonals are no faster than straight moves.
	if move.Len() > 1 {
		move = move.Normalize()
	}

	feet := mc.player.Feet
	next, ok := mc.deck.Step(feet, feet.Add(move.Mul(mc.speed*dt)))
	mc.player.Feet = next
	mc.Blocked = !ok
}

// Turn rotates the deck and carries the player with it. It returns the
// change in view yaw, in degrees, that keeps the player facing the same
// way relative to the deck.
func (mc *MovementController) Turn(degrees float32) float32 {
	mc.player.Feet = mc.deck.Rotate(degrees, mc.player.Feet)
	return -degrees
}
