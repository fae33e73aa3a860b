package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if cfg.Player.MouseSensitivity != 0.05 {
		t.Errorf("expected mouse sensitivity 0.05, got %f", cfg.Player.MouseSensitivity)
	}
	if cfg.Render.LightDir != [3]float32{-0.2, 1.0, -0.3} {
		t.Errorf("expected light dir (-0.2, 1, -0.3), got %v", cfg.Render.LightDir)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true

render:
  fov_degrees: 60
  shadows: false
  light_dir: [0, 1, 0]

scene:
  ship_model: "models/brig.obj"
  ship_position: [10, 0, -4]
  ship_scale: 2
  items:
    - name: barrel
      model: models/barrel.obj
      at: [1.5, -2]

player:
  reach: 3.5
  max_step: 0.4

logging:
  level: "debug"
  log_file: "galleon.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Render.FOVDegrees != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Render.FOVDegrees)
	}
	if cfg.Render.Shadows {
		t.Error("expected shadows to be disabled")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Render.ShadowMapSize != 2048 {
		t.Errorf("expected default shadow map size 2048, got %d", cfg.Render.ShadowMapSize)
	}
	if cfg.Scene.ShipModel != "models/brig.obj" {
		t.Errorf("expected ship model models/brig.obj, got %s", cfg.Scene.ShipModel)
	}
	if cfg.Scene.ShipPosition != [3]float32{10, 0, -4} {
		t.Errorf("expected ship position (10, 0, -4), got %v", cfg.Scene.ShipPosition)
	}
	if len(cfg.Scene.Items) != 1 || cfg.Scene.Items[0].Name != "barrel" {
		t.Fatalf("expected one barrel item, got %+v", cfg.Scene.Items)
	}
	if cfg.Scene.Items[0].At != [2]float32{1.5, -2} {
		t.Errorf("expected item at (1.5, -2), got %v", cfg.Scene.Items[0].At)
	}
	if cfg.Player.Reach != 3.5 {
		t.Errorf("expected reach 3.5, got %f", cfg.Player.Reach)
	}
	if cfg.Logging.LogFile != "galleon.log" {
		t.Errorf("expected log file 'galleon.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"fov too wide", func(c *Config) { c.Render.FOVDegrees = 180 }, "fov_degrees"},
		{"far before near", func(c *Config) { c.Render.Far = 0.05 }, "clip planes"},
		{"no shadow map", func(c *Config) { c.Render.ShadowMapSize = 0 }, "shadow_map_size"},
		{"zero light", func(c *Config) { c.Render.LightDir = [3]float32{} }, "light_dir"},
		{"no ship", func(c *Config) { c.Scene.ShipModel = "" }, "ship_model"},
		{"zero reach", func(c *Config) { c.Player.Reach = 0 }, "reach"},
		{"negative step", func(c *Config) { c.Player.MaxStep = -1 }, "max_step"},
		{"loud", func(c *Config) { c.Audio.Volume = 1.5 }, "audio volume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error mentioning %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestValidateShadowsOff(t *testing.T) {
	cfg := Default()
	cfg.Render.Shadows = false
	cfg.Render.ShadowMapSize = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected shadow map size to be ignored without shadows, got %v", err)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "galleon.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path != "./galleon.yaml" {
		t.Errorf("expected to find ./galleon.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "ship flag",
			setup: func() { *flagShip = "other/ship.obj" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.ShipModel != "other/ship.obj" {
					t.Errorf("expected ship other/ship.obj, got %s", cfg.Scene.ShipModel)
				}
			},
			teardown: func() { *flagShip = "" },
		},
		{
			name:  "mute flag",
			setup: func() { *flagMute = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Audio.Enabled {
					t.Error("expected audio to be disabled with mute flag")
				}
			},
			teardown: func() { *flagMute = false },
		},
		{
			name:  "overlay flag",
			setup: func() { *flagOverlay = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Debug.Overlay {
					t.Error("expected overlay to be enabled with overlay flag")
				}
			},
			teardown: func() { *flagOverlay = false },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width comes from the flag, height from the file.
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("player:\n  reach: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject negative reach, got nil")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Scene.ShipModel = "saved/ship.obj"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Scene.ShipModel != "saved/ship.obj" {
		t.Errorf("expected ship model saved/ship.obj, got %s", loaded.Scene.ShipModel)
	}
}
