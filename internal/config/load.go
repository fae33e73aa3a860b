package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
// The result is validated before it is returned.
func Load() (*Config, error) {
	cfg := Default()

	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./galleon.yaml",
		"./config.yaml",
		DefaultPath(),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Galleon")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Galleon")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "galleon")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "galleon")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate reports settings the viewer cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Render.FOVDegrees <= 0 || c.Render.FOVDegrees >= 180 {
		errs = append(errs, fmt.Errorf("fov_degrees %g must be in (0, 180)", c.Render.FOVDegrees))
	}
	if c.Render.Near <= 0 || c.Render.Far <= c.Render.Near {
		errs = append(errs, fmt.Errorf("clip planes near=%g far=%g: need 0 < near < far", c.Render.Near, c.Render.Far))
	}
	if c.Render.Shadows && c.Render.ShadowMapSize <= 0 {
		errs = append(errs, fmt.Errorf("shadow_map_size %d must be positive", c.Render.ShadowMapSize))
	}
	if c.Render.LightDir == [3]float32{} {
		errs = append(errs, errors.New("light_dir must not be zero"))
	}
	if c.Scene.ShipModel == "" {
		errs = append(errs, errors.New("scene.ship_model is required"))
	}
	if c.Scene.ShipScale <= 0 {
		errs = append(errs, fmt.Errorf("ship_scale %g must be positive", c.Scene.ShipScale))
	}
	if c.Player.Reach <= 0 {
		errs = append(errs, fmt.Errorf("reach %g must be positive", c.Player.Reach))
	}
	if c.Player.MaxStep < 0 {
		errs = append(errs, fmt.Errorf("max_step %g must not be negative", c.Player.MaxStep))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio volume %g must be in [0, 1]", c.Audio.Volume))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
