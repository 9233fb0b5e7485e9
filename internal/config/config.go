// Package config provides YAML-based configuration loading for Solar City.
// Level tables are fixed in the game package; this only covers the hosts.
package config

// Config contains all host configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
}

// DisplayConfig defines frame pacing and window parameters.
type DisplayConfig struct {
	FPS     int     `yaml:"fps"`
	MaxStep float64 `yaml:"max_step"` // Longest simulation step in seconds after a stall
	Scale   float64 `yaml:"scale"`    // Window size relative to the 1200x800 world
	Title   string  `yaml:"title"`
}

// AudioConfig defines cue files and volumes.
type AudioConfig struct {
	Enabled   bool        `yaml:"enabled"`
	AssetsDir string      `yaml:"assets_dir"`
	Music     string      `yaml:"music"`
	Thunder   string      `yaml:"thunder"`
	Victory   string      `yaml:"victory"`
	Defeat    string      `yaml:"defeat"`
	Volumes   AudioVolume `yaml:"volumes"`
}

// AudioVolume holds linear gains in [0, 1].
type AudioVolume struct {
	MusicNormal float64 `yaml:"music_normal"`
	MusicLow    float64 `yaml:"music_low"`
	Thunder     float64 `yaml:"thunder"`
	Victory     float64 `yaml:"victory"`
	Defeat      float64 `yaml:"defeat"`
}

// LogConfig defines the logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr for the window host and discard for the terminal host
}

// StorageConfig defines the optional run log.
type StorageConfig struct {
	Path string `yaml:"path"` // Empty disables the run log
	Top  int    `yaml:"top"`  // Rows shown by the scores command
}
