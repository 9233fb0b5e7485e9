package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration.
// Search order: customPath -> ~/.solarcity/config.yaml -> ./configs/solarcity.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "solarcity.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	cfg.normalize()
	return cfg, nil
}

// normalize replaces unusable values with defaults.
func (c *Config) normalize() {
	def := Default()
	if c.Display.FPS <= 0 {
		c.Display.FPS = def.Display.FPS
	}
	if c.Display.MaxStep <= 0 {
		c.Display.MaxStep = def.Display.MaxStep
	}
	if c.Display.Scale <= 0 {
		c.Display.Scale = def.Display.Scale
	}
	if c.Storage.Top <= 0 {
		c.Storage.Top = def.Storage.Top
	}

	v := &c.Audio.Volumes
	for _, g := range []*float64{&v.MusicNormal, &v.MusicLow, &v.Thunder, &v.Victory, &v.Defeat} {
		if *g < 0 {
			*g = 0
		}
		if *g > 1 {
			*g = 1
		}
	}
}

// AssetPath joins a cue file name onto the assets directory.
// Absolute names are returned unchanged.
func (a AudioConfig) AssetPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.AssetsDir, name)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".solarcity", filename)
}
