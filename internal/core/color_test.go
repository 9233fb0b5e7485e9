package core

import "testing"

func TestRGBHex(t *testing.T) {
	tests := []struct {
		c    RGB
		want string
	}{
		{Black, "#000000"},
		{White, "#ffffff"},
		{PanelBlue, "#1e90ff"},
	}

	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.want {
			t.Errorf("%+v.Hex() = %q, expected %q", tc.c, got, tc.want)
		}
	}
}

func TestRGBScale(t *testing.T) {
	c := RGB{200, 100, 10}

	if got := c.Scale(0.5); got != (RGB{100, 50, 5}) {
		t.Errorf("Scale(0.5) = %+v", got)
	}
	if got := c.Scale(2); got != (RGB{255, 200, 20}) {
		t.Errorf("Scale(2) should saturate at 255, got %+v", got)
	}
}

func TestBuildingColorWraps(t *testing.T) {
	n := len(BuildingColors)
	if BuildingColor(n) != BuildingColors[0] {
		t.Error("BuildingColor should wrap around the palette")
	}
	if BuildingColor(-1) != BuildingColors[n-1] {
		t.Error("BuildingColor should handle negative indices")
	}
}
