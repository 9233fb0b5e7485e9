package config

import (
	_ "embed"
)

//go:embed defaults/solarcity.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			FPS:     60,
			MaxStep: 0.1,
			Scale:   1.0,
			Title:   "Cidade Solar Inteligente",
		},
		Audio: AudioConfig{
			Enabled:   true,
			AssetsDir: ".",
			Music:     "musica.mp3",
			Thunder:   "trovao.mp3",
			Victory:   "vitoria.mp3",
			Defeat:    "derrota.mp3",
			Volumes: AudioVolume{
				MusicNormal: 0.1,
				MusicLow:    0.02,
				Thunder:     0.7,
				Victory:     0.6,
				Defeat:      0.7,
			},
		},
		Log: LogConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Top: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
