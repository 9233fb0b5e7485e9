package core

// RGB is a 24-bit color used by the simulation for buildings and particles.
// Hosts convert it to whatever their surface understands.
type RGB struct {
	R, G, B uint8
}

// Palette colors used by the game.
var (
	PanelBlue = RGB{30, 144, 255}
	PanelDark = RGB{25, 118, 210}
	SunYellow = RGB{255, 223, 0}
	SkyBlue   = RGB{135, 206, 235}
	SkyStorm  = RGB{70, 80, 100}
	Grass     = RGB{76, 175, 80}
	RainColor = RGB{180, 180, 200}
	White     = RGB{255, 255, 255}
	Black     = RGB{0, 0, 0}
)

// BuildingColors are assigned to buildings in roster order.
var BuildingColors = []RGB{
	{255, 107, 107}, {255, 159, 64}, {255, 206, 86}, {75, 192, 192},
	{54, 162, 235}, {153, 102, 255}, {255, 99, 132}, {100, 221, 23},
}

// BuildingColor returns the palette color for the i-th building.
func BuildingColor(i int) RGB {
	if len(BuildingColors) == 0 {
		return White
	}
	return BuildingColors[((i%len(BuildingColors))+len(BuildingColors))%len(BuildingColors)]
}

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0x0f]
	}
	return string(b)
}

// Scale darkens (factor < 1) or brightens (factor > 1) the color.
func (c RGB) Scale(factor float64) RGB {
	scale := func(v uint8) uint8 {
		return uint8(ClampF(float64(v)*factor, 0, 255))
	}
	return RGB{scale(c.R), scale(c.G), scale(c.B)}
}
