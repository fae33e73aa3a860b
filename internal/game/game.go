// Package game runs the viewer: it owns the window, the loaded scene and
// the main loop.
package game

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/galleon/internal/config"
	"github.com/Faultbox/galleon/internal/engine/audio"
	"github.com/Faultbox/galleon/internal/engine/camera"
	"github.com/Faultbox/galleon/internal/engine/debug"
	"github.com/Faultbox/galleon/internal/engine/input"
	"github.com/Faultbox/galleon/internal/engine/renderer"
	"github.com/Faultbox/galleon/internal/engine/window"
	"github.com/Faultbox/galleon/internal/game/states"
	"github.com/Faultbox/galleon/internal/game/world"
	"github.com/Faultbox/galleon/internal/logger"
)

// Sound effect names.
const (
	soundPickup = "pickup"
	soundDrop   = "drop"
)

// App is the whole application state. Everything the loop touches hangs
// off it; there are no package-level globals.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	audio    *audio.Manager

	scene *scene

	camera *camera.FPSCamera
	orbit  *camera.OrbitCamera
	tour   *camera.PathPlayer

	deck      *world.Deck
	player    *world.Player
	movement  *world.MovementController // nil when the ship has no walkable deck
	inventory *world.Inventory

	modes     *states.Manager
	walkMode  *walkMode
	tourMode  *tourMode
	orbitMode *orbitMode

	showOverlay bool
	screenshots *debug.Screenshots
	wantShot    bool

	elapsed float32
}

// New opens the window and loads the scene. A ship that fails to load
// is an error; the other scene parts are optional.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg:         cfg,
		log:         logger.Named("game"),
		showOverlay: cfg.Debug.Overlay,
		screenshots: debug.NewScreenshots(cfg.Debug.ScreenshotDir, "galleon"),
	}
	a.log.Info("initializing viewer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer needs the GL context the window just created.
	w, h := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		FOVDegrees: cfg.Render.FOVDegrees,
		Near:       cfg.Render.Near,
		Far:        cfg.Render.Far,
		ClearColor: mgl32.Vec3(cfg.Render.ClearColor),
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene, err = loadScene(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.input = input.New()
	a.initAudio()
	a.initWorld()

	a.modes = states.NewManager()
	a.walkMode = &walkMode{app: a}
	a.tourMode = &tourMode{app: a}
	a.orbitMode = &orbitMode{app: a}
	a.modes.Change(a.walkMode)

	a.log.Info("viewer initialized")
	return a, nil
}

func (a *App) initAudio() {
	if !a.cfg.Audio.Enabled {
		return
	}
	a.audio = audio.New()
	if err := a.audio.Init(); err != nil {
		a.log.Warn("audio disabled", zap.Error(err))
		return
	}
	a.audio.SetMasterVolume(a.cfg.Audio.Volume)
	if a.cfg.Audio.Ambience != "" {
		if err := a.audio.PlayAmbience(a.cfg.Audio.Ambience); err != nil {
			a.log.Warn("no ambience", zap.Error(err))
		}
	}
	for name, path := range map[string]string{
		soundPickup: a.cfg.Audio.PickupSound,
		soundDrop:   a.cfg.Audio.DropSound,
	} {
		if path == "" {
			continue
		}
		if err := a.audio.LoadEffect(name, path); err != nil {
			a.log.Warn("sound effect skipped", zap.String("name", name), zap.Error(err))
		}
	}
}

// initWorld puts the player on the deck and the items around them.
func (a *App) initWorld() {
	pc := a.cfg.Player
	ship := a.scene.ship

	a.deck = world.NewDeck(ship.model, ship.transform, pc.MaxStep)
	a.player = &world.Player{EyeHeight: pc.EyeHeight}
	a.inventory = world.NewInventory(a.deck, pc.Reach)
	// The camera starts where the scene is framed when there is no deck.
	a.camera = camera.NewFPSCamera(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, -10})

	if spawn, ok := world.SpawnPoint(ship.model); ok {
		a.player.Feet = a.deck.Transform.ToWorld(spawn)
		a.movement = world.NewMovementController(a.deck, a.player, pc.MoveSpeed)
		if !a.movement.Settle() {
			a.log.Warn("spawn point is off the deck", zap.Float32s("feet", a.player.Feet[:]))
		}
		a.camera.Position = a.player.Eye()
		a.camera.LookAt(a.player.Eye().Add(mgl32.Vec3{0, 0, -1}))
	} else {
		a.log.Warn("ship has no walkable deck, using free camera", zap.String("ship", ship.model.Path()))
	}

	top := ship.model.Bounds().Max[1] + 1
	for _, si := range a.scene.items {
		if err := a.inventory.Place(si.item, si.at[0], si.at[1], top); err != nil {
			a.log.Warn("item not placed", zap.String("item", si.item.Name), zap.Error(err))
		}
	}

	bounds := a.scene.shipBounds(a.deck.Transform)
	a.orbit = camera.NewOrbitCamera()
	a.orbit.FitToBounds(bounds)
	center, radius, height := mgl32.Vec3{}, float32(20), float32(5)
	if !bounds.IsEmpty() {
		center = bounds.Center()
		radius = max(bounds.Radius()*1.5, 5)
		height = bounds.Size()[1]
	}
	a.tour = camera.NewPathPlayer(camera.CirclePath(center, radius, height, 30, 12))
}

// Run starts the main loop and returns when the window is closed or
// Escape is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		// 1. Input
		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		// 2. Update
		if err := a.update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		a.render()
		if a.wantShot {
			a.wantShot = false
			a.screenshot()
		}

		// 4. Present
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	if _, _, ok := a.input.Resized(); ok {
		// The event carries window coordinates; GL wants pixels.
		a.renderer.Resize(a.window.DrawableSize())
	}
	if a.input.IsKeyPressed(keyQuit) {
		a.running = false
	}
	if a.input.IsKeyPressed(keyTour) {
		a.modes.Toggle(a.tourMode, a.walkMode)
	}
	if a.input.IsKeyPressed(keyOrbit) {
		a.modes.Toggle(a.orbitMode, a.walkMode)
	}
	if a.input.IsKeyPressed(keyOverlay) {
		a.showOverlay = !a.showOverlay
	}
	if a.input.IsKeyPressed(keyScreenshot) {
		a.wantShot = true
	}
}

// screenshot saves the frame just rendered, before it is presented.
func (a *App) screenshot() {
	w, h := a.window.DrawableSize()
	name, err := a.screenshots.Capture(w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", name))
}

func (a *App) update(dt float32) error {
	a.elapsed += dt
	return a.modes.Update(dt)
}

// viewMatrix returns the active camera's view and eye position.
func (a *App) viewMatrix() (mgl32.Mat4, mgl32.Vec3) {
	if a.modes.Current() == a.orbitMode {
		return a.orbit.ViewMatrix(), a.orbit.Position()
	}
	return a.camera.ViewMatrix(), a.camera.Position
}

func (a *App) playEffect(name string) {
	if a.audio != nil {
		a.audio.PlayEffect(name)
	}
}

// Close releases everything New acquired. It is safe on a partly
// initialized App.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.audio != nil {
		a.audio.Close()
	}
	if a.scene != nil {
		a.scene.destroy()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
