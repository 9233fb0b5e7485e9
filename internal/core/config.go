package core

// World dimensions in pixels. Layout, buttons and pointer events all use
// this coordinate space; hosts scale it to their surface.
const (
	WorldW = 1200
	WorldH = 800
)

// RuntimeConfig contains configuration passed to the game by its host.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (terminal cells or window pixels)
	ScreenH  int   // Host surface height
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}
