package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/solar-city/internal/audio"
	"github.com/vovakirdan/solar-city/internal/config"
	"github.com/vovakirdan/solar-city/internal/games/solarcity"
	"github.com/vovakirdan/solar-city/internal/storage"
)

// app bundles what both game hosts need.
type app struct {
	cfg    config.Config
	logger *log.Logger
	store  *storage.Store // nil when the run log is disabled
	player *audio.Player  // nil when muted
	logOut io.Closer      // Log file, if any
}

// setup loads the config and opens the logger, the run log and the audio
// player. Logs go to defaultLog unless a log file is configured.
// Only config and log file errors are fatal.
func setup(defaultLog io.Writer, withAudio bool) (*app, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	applyFlags(&cfg)

	rt := &app{cfg: cfg}

	out := defaultLog
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		rt.logOut = f
	}
	rt.logger = newLogger(out, cfg.Log.Level)

	if cfg.Storage.Path != "" {
		store, err := storage.Open(cfg.Storage.Path)
		if err != nil {
			// Continue without the run log - the game still works
			rt.logger.Warn("could not open run log", "path", cfg.Storage.Path, "err", err)
		} else {
			rt.store = store
		}
	}

	if withAudio && cfg.Audio.Enabled {
		rt.player = audio.NewPlayer(cfg.Audio.Volumes, rt.logger)
		n := rt.player.Load(cfg.Audio)
		if err := rt.player.Start(); err != nil {
			rt.logger.Warn("sound disabled", "err", err)
		}
		rt.logger.Debug("sound ready", "cues", n)
	}

	return rt, nil
}

// applyFlags lets command line flags override the loaded config.
func applyFlags(cfg *config.Config) {
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
}

// newLogger builds the process logger. Unknown levels fall back to info.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "solarcity",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// events returns the emitter for the game hosts. A nil player must not
// become a non-nil interface holding a nil pointer.
func (rt *app) events() solarcity.Emitter {
	if rt.player == nil {
		return nil
	}
	return rt.player
}

// Close releases everything setup opened.
func (rt *app) Close() {
	if rt.player != nil {
		rt.player.Close()
	}
	if rt.store != nil {
		if err := rt.store.Close(); err != nil {
			rt.logger.Warn("could not close run log", "err", err)
		}
	}
	if rt.logOut != nil {
		rt.logOut.Close()
	}
}
