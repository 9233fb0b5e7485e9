package window

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/solar-city/internal/core"
	"github.com/vovakirdan/solar-city/internal/games/solarcity"
)

func stormSnapshot() *solarcity.Snapshot {
	return &solarcity.Snapshot{
		State:   solarcity.StatePlaying,
		Session: solarcity.Session{Weather: solarcity.Weather{StormActive: true, SunIntensity: solarcity.StormSunIntensity}},
	}
}

func TestNewSky(t *testing.T) {
	s := NewSky(rand.New(rand.NewSource(1)))
	if len(s.Clouds) != cloudCount {
		t.Fatalf("%d clouds, expected %d", len(s.Clouds), cloudCount)
	}
	for _, c := range s.Clouds {
		if c.X < 0 || c.X >= core.WorldW || c.Y < 50 || c.Y >= 150 || c.Size < 70 || c.Size > 120 {
			t.Errorf("cloud out of range: %+v", c)
		}
	}
}

func TestSkyCloudsWrap(t *testing.T) {
	s := NewSky(rand.New(rand.NewSource(1)))
	s.Clouds = []Cloud{{X: core.WorldW + cloudWrap - 1, Speed: 1}}

	s.Update(1, &solarcity.Snapshot{State: solarcity.StateMenu})
	if s.Clouds[0].X != -cloudWrap {
		t.Errorf("cloud X = %v, expected wrap to %d", s.Clouds[0].X, -cloudWrap)
	}
}

func TestSkyRainOnlyDuringStorm(t *testing.T) {
	s := NewSky(rand.New(rand.NewSource(2)))
	storm := stormSnapshot()

	for range 100 {
		s.Update(0.001, storm)
	}
	if len(s.Drops) == 0 {
		t.Fatal("no rain after 100 storm frames")
	}
	for _, d := range s.Drops {
		if d.Speed < 400 || d.Speed > 700 || d.Y >= core.WorldH {
			t.Errorf("bad drop %+v", d)
		}
	}

	s.Update(0.001, &solarcity.Snapshot{State: solarcity.StatePlaying})
	if len(s.Drops) != 0 {
		t.Errorf("%d drops left after the storm", len(s.Drops))
	}
}

func TestSkyRainFallsOut(t *testing.T) {
	s := NewSky(rand.New(rand.NewSource(3)))
	s.Drops = []Drop{{X: 10, Y: core.WorldH - 1, Speed: 500}}

	s.updateRain(0.1, true)
	for _, d := range s.Drops {
		if d.Y >= core.WorldH {
			t.Errorf("drop below the window kept: %+v", d)
		}
	}
}

func TestSkyLightning(t *testing.T) {
	s := NewSky(rand.New(rand.NewSource(4)))
	s.strike()

	if s.Flash != 1 || len(s.Bolt) != boltSegments+1 {
		t.Fatalf("strike: flash %v bolt %d", s.Flash, len(s.Bolt))
	}
	if s.Bolt[0].Y != 0 {
		t.Errorf("bolt starts at y %v", s.Bolt[0].Y)
	}
	for i := 1; i < len(s.Bolt); i++ {
		if dy := s.Bolt[i].Y - s.Bolt[i-1].Y; dy < 50 || dy > 100 {
			t.Errorf("segment %d drops %v", i, dy)
		}
	}

	// The flash fades in 1/flashDecay seconds outside a storm.
	s.Update(1.0/flashDecay, &solarcity.Snapshot{State: solarcity.StatePlaying})
	if s.Flash != 0 || len(s.Bolt) != 0 {
		t.Errorf("after fade: flash %v bolt %d", s.Flash, len(s.Bolt))
	}
}

func TestSkyLightningOdds(t *testing.T) {
	s := NewSky(rand.New(rand.NewSource(5)))
	storm := stormSnapshot()

	strikes := 0
	for range 5000 {
		s.Flash = 0
		s.Update(0, storm)
		if s.Flash == 1 {
			strikes++
		}
	}
	// 2% of frames, with generous bounds.
	if strikes < 50 || strikes > 160 {
		t.Errorf("%d strikes in 5000 storm frames", strikes)
	}
}

func TestSkyConfetti(t *testing.T) {
	s := NewSky(rand.New(rand.NewSource(6)))

	s.Update(0.016, &solarcity.Snapshot{State: solarcity.StateVictory})
	if len(s.Confetti) != confettiCount {
		t.Fatalf("%d confetti, expected %d", len(s.Confetti), confettiCount)
	}
	for _, c := range s.Confetti {
		if c.Size < 4 || c.Size > 12 {
			t.Errorf("confetti size %v", c.Size)
		}
	}

	s.Update(0.016, &solarcity.Snapshot{State: solarcity.StateMenu})
	if len(s.Confetti) != 0 {
		t.Error("confetti outside the victory screen")
	}
}

func TestButtonColors(t *testing.T) {
	tests := []struct {
		name  string
		state solarcity.State
		level int
		id    solarcity.ButtonID
		fill  core.RGB
	}{
		{"start", solarcity.StateMenu, 1, solarcity.ButtonStart, core.Grass},
		{"retry", solarcity.StateGameOver, 2, solarcity.ButtonRetry, core.RGB{R: 200, G: 60, B: 60}},
		{"loss menu", solarcity.StateGameOver, 2, solarcity.ButtonMenu, textGray},
		{"next", solarcity.StateVictory, 1, solarcity.ButtonNext, core.Grass},
		{"play again", solarcity.StateVictory, 3, solarcity.ButtonNext, core.PanelBlue},
		{"win menu", solarcity.StateVictory, 3, solarcity.ButtonMenu, core.RGB{R: 139, G: 195, B: 74}},
	}

	for _, tc := range tests {
		if fill, _ := buttonColors(tc.state, tc.level, tc.id); fill != tc.fill {
			t.Errorf("%s: fill %v, expected %v", tc.name, fill, tc.fill)
		}
	}
}
