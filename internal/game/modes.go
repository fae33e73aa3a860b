package game

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/galleon/internal/engine/camera"
)

// Key bindings.
const (
	keyForward    sdl.Scancode = sdl.SCANCODE_W
	keyBackward   sdl.Scancode = sdl.SCANCODE_S
	keyLeft       sdl.Scancode = sdl.SCANCODE_A
	keyRight      sdl.Scancode = sdl.SCANCODE_D
	keyTurnLeft   sdl.Scancode = sdl.SCANCODE_Q
	keyTurnRight  sdl.Scancode = sdl.SCANCODE_E
	keyUse        sdl.Scancode = sdl.SCANCODE_F
	keyTour       sdl.Scancode = sdl.SCANCODE_P
	keyOrbit      sdl.Scancode = sdl.SCANCODE_O
	keyOverlay    sdl.Scancode = sdl.SCANCODE_G
	keyScreenshot sdl.Scancode = sdl.SCANCODE_F12
	keyQuit       sdl.Scancode = sdl.SCANCODE_ESCAPE
)

// axis turns a pair of held keys into -1, 0 or 1.
func (a *App) axis(neg, pos sdl.Scancode) float32 {
	var v float32
	if a.input.IsKeyDown(pos) {
		v++
	}
	if a.input.IsKeyDown(neg) {
		v--
	}
	return v
}

// mouseLook turns the first-person camera by this frame's mouse motion.
func (a *App) mouseLook() {
	dx, dy := a.input.MouseDelta()
	sens := a.cfg.Player.MouseSensitivity
	// Screen Y grows downwards; pitch grows upwards.
	a.camera.Rotate(dx*sens, -dy*sens)
}

// walkMode walks the player on the deck. Without a walkable deck it
// flies the camera freely instead.
type walkMode struct {
	app     *App
	blocked bool
}

func (m *walkMode) Enter() error {
	m.app.window.CaptureMouse(true)
	return nil
}

func (m *walkMode) Exit() error {
	return nil
}

func (m *walkMode) Update(dt float32) error {
	a := m.app
	a.mouseLook()

	fwd := a.axis(keyBackward, keyForward)
	side := a.axis(keyLeft, keyRight)

	if a.movement == nil {
		step := a.cfg.Player.MoveSpeed * dt
		a.camera.Move(camera.Forward, fwd*step)
		a.camera.Move(camera.Right, side*step)
		return nil
	}

	if turn := a.axis(keyTurnRight, keyTurnLeft); turn != 0 {
		yaw := a.movement.Turn(turn * a.cfg.Player.TurnDegrees)
		a.camera.Rotate(yaw, 0)
		// Rounding in the turn can lift the feet off the surface.
		a.movement.Settle()
	}

	right := a.camera.Right()
	right[1] = 0
	a.movement.Update(dt, a.camera.FlatFront(), right, fwd, side)
	a.camera.Position = a.player.Eye()
	if a.movement.Blocked && !m.blocked {
		a.log.Debug("blocked by the deck", zap.Float32s("feet", a.player.Feet[:]))
	}
	m.blocked = a.movement.Blocked

	if a.input.IsKeyPressed(keyUse) {
		m.use()
	}
	return nil
}

// use picks up the nearest item, or drops the held one.
func (m *walkMode) use() {
	a := m.app
	if a.inventory.Held() == nil {
		it, err := a.inventory.PickUp(a.player.Feet)
		if err != nil {
			a.log.Debug("nothing picked up", zap.Error(err))
			return
		}
		a.log.Info("picked up", zap.String("item", it.Name))
		a.playEffect(soundPickup)
		return
	}

	forward := a.camera.FlatFront()
	if forward == (mgl32.Vec3{}) {
		a.log.Debug("no drop direction while looking straight up or down")
		return
	}
	it, err := a.inventory.Drop(a.player.Feet, forward)
	if err != nil {
		a.log.Info("cannot drop here", zap.Error(err))
		return
	}
	a.log.Info("dropped", zap.String("item", it.Name), zap.Float32("y", it.Local[1]))
	a.playEffect(soundDrop)
}

// tourMode flies the camera around the ship and returns to walking at
// the end.
type tourMode struct {
	app *App
}

func (m *tourMode) Enter() error {
	if !m.app.tour.Playing() {
		m.app.tour.Toggle()
	}
	return nil
}

func (m *tourMode) Exit() error {
	a := m.app
	if a.tour.Playing() {
		a.tour.Toggle()
	}
	if a.movement != nil {
		a.camera.Position = a.player.Eye()
	}
	return nil
}

func (m *tourMode) Update(dt float32) error {
	if !m.app.tour.Update(m.app.camera, dt) {
		m.app.modes.Change(m.app.walkMode)
	}
	return nil
}

// orbitMode inspects the ship from outside: the mouse drags the orbit
// and the wheel zooms.
type orbitMode struct {
	app *App
}

func (m *orbitMode) Enter() error {
	// The ship may have turned since the last visit.
	m.app.orbit.FitToBounds(m.app.scene.shipBounds(m.app.deck.Transform))
	return nil
}

func (m *orbitMode) Exit() error {
	return nil
}

func (m *orbitMode) Update(dt float32) error {
	a := m.app
	dx, dy := a.input.MouseDelta()
	a.orbit.HandleDrag(dx, dy)
	if w := a.input.Wheel(); w != 0 {
		a.orbit.HandleZoom(float32(w))
	}
	return nil
}
