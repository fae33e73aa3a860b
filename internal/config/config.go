// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Scene   SceneConfig   `yaml:"scene"`
	Player  PlayerConfig  `yaml:"player"`
	Audio   AudioConfig   `yaml:"audio"`
	Debug   DebugConfig   `yaml:"debug"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// RenderConfig holds projection, lighting and shadow settings.
type RenderConfig struct {
	FOVDegrees    float32    `yaml:"fov_degrees"`
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	Shadows       bool       `yaml:"shadows"`
	ShadowMapSize int32      `yaml:"shadow_map_size"`
	ClearColor    [3]float32 `yaml:"clear_color"`
	LightDir      [3]float32 `yaml:"light_dir"` // points towards the light, normalized on use
	LightColor    [3]float32 `yaml:"light_color"`
	HazeColor     [3]float32 `yaml:"haze_color"`
	HazeHeight    float32    `yaml:"haze_height"`   // larger values pull the haze closer to the horizon
	HazeStrength  float32    `yaml:"haze_strength"` // how much of the sky the haze replaces at the horizon
	HazeDensity   float32    `yaml:"haze_density"`  // distance fog on geometry
}

// SceneConfig lists the models placed in the world and their transforms.
type SceneConfig struct {
	ShipModel    string     `yaml:"ship_model"`
	ShipPosition [3]float32 `yaml:"ship_position"`
	ShipScale    float32    `yaml:"ship_scale"`
	ShipYaw      float32    `yaml:"ship_yaw"`

	OceanModel    string     `yaml:"ocean_model"`
	OceanPosition [3]float32 `yaml:"ocean_position"`
	OceanScale    float32    `yaml:"ocean_scale"`

	MoonModel    string     `yaml:"moon_model"`
	MoonPosition [3]float32 `yaml:"moon_position"`
	MoonScale    float32    `yaml:"moon_scale"`

	SkyboxDir string `yaml:"skybox_dir"`

	WaveAmplitude float32 `yaml:"wave_amplitude"`
	WaveFrequency float32 `yaml:"wave_frequency"`
	WaveSpeed     float32 `yaml:"wave_speed"`

	// Items are the names of the loose models scattered on the deck.
	Items []ItemConfig `yaml:"items"`
}

// ItemConfig places a loose object on the ship, in deck (model) coordinates.
type ItemConfig struct {
	Name  string     `yaml:"name"`
	Model string     `yaml:"model"`
	At    [2]float32 `yaml:"at"` // x, z on the deck
	Scale float32    `yaml:"scale"`
}

// PlayerConfig holds first-person movement settings.
type PlayerConfig struct {
	EyeHeight        float32 `yaml:"eye_height"`
	MoveSpeed        float32 `yaml:"move_speed"` // units per second
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	Reach            float32 `yaml:"reach"`
	MaxStep          float32 `yaml:"max_step"`
	TurnDegrees      float32 `yaml:"turn_degrees"` // ship yaw per Q/E tick
}

// AudioConfig holds sound settings. Missing sound files are skipped.
type AudioConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"`
	Ambience    string  `yaml:"ambience"`
	PickupSound string  `yaml:"pickup_sound"`
	DropSound   string  `yaml:"drop_sound"`
}

// DebugConfig holds diagnostic settings.
type DebugConfig struct {
	Overlay       bool   `yaml:"overlay"` // walk surface and ship bounds, toggled with G
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Galleon",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Render: RenderConfig{
			FOVDegrees:    45,
			Near:          0.1,
			Far:           10000,
			Shadows:       true,
			ShadowMapSize: 2048,
			ClearColor:    [3]float32{0.7, 0.7, 0.7},
			LightDir:      [3]float32{-0.2, 1.0, -0.3},
			LightColor:    [3]float32{0.12, 0.14, 0.20},
			HazeColor:     [3]float32{0.003, 0.006, 0.015},
			HazeHeight:    1.5,
			HazeStrength:  0.75,
			HazeDensity:   0.002,
		},
		Scene: SceneConfig{
			ShipModel:     "assets/ship/ship.obj",
			ShipScale:     1,
			OceanModel:    "assets/ocean/ocean.obj",
			OceanPosition: [3]float32{0, -5, -15},
			OceanScale:    10,
			MoonModel:     "assets/moon/moon.obj",
			MoonPosition:  [3]float32{-7000, 5000, -2000},
			MoonScale:     100,
			SkyboxDir:     "assets/skybox",
			WaveAmplitude: 0.2,
			WaveFrequency: 0.7,
			WaveSpeed:     2.6,
		},
		Player: PlayerConfig{
			EyeHeight:        1.7,
			MoveSpeed:        3,
			MouseSensitivity: 0.05,
			Reach:            2,
			MaxStep:          0.6,
			TurnDegrees:      1,
		},
		Audio: AudioConfig{
			Enabled:     true,
			Volume:      0.8,
			Ambience:    "assets/audio/ocean.wav",
			PickupSound: "assets/audio/pickup.wav",
			DropSound:   "assets/audio/drop.wav",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
