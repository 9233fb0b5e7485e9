package runlog

import (
	"io"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/solar-city/internal/games/solarcity"
	"github.com/vovakirdan/solar-city/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// clickButton presses the center of the first button with the given ID.
func clickButton(t *testing.T, m *solarcity.Machine, id solarcity.ButtonID) {
	t.Helper()
	for _, b := range solarcity.Buttons(m.State(), m.Level()) {
		if b.ID == id {
			x, y := b.Rect.Center()
			m.Click(x, y)
			return
		}
	}
	t.Fatalf("no button %v in state %v", id, m.State())
}

// loseToStorm plays level 1 without installing anything until the storm ends it.
func loseToStorm(t *testing.T, m *solarcity.Machine) {
	t.Helper()
	clickButton(t, m, solarcity.ButtonStart)
	clickButton(t, m, solarcity.ButtonBegin)
	m.Tick(5)
	for i := 0; i < 3; i++ {
		m.Tick(1)
	}
	if m.State() != solarcity.StateGameOver {
		t.Fatalf("state = %v, expected gameover", m.State())
	}
}

func TestSaverWritesOncePerFinish(t *testing.T) {
	store := openTestStore(t)
	logger := log.New(io.Discard)
	m := solarcity.NewMachine(solarcity.Deps{Rand: rand.New(rand.NewSource(7))})
	saver := NewSaver(store, logger, 7)

	loseToStorm(t, m)
	if !saver.Observe(m) {
		t.Fatal("first Observe in gameover did not save")
	}
	if saver.Observe(m) {
		t.Error("second Observe saved the same finish again")
	}

	clickButton(t, m, solarcity.ButtonRetry)
	if saver.Observe(m) {
		t.Error("Observe saved while playing")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("%d runs stored, expected 1", len(runs))
	}

	r := runs[0]
	if r.Level != 1 || r.Outcome != "storm" || r.Panels != 0 || r.Buildings != 3 || r.Seed != 7 {
		t.Errorf("unexpected run %+v", r)
	}
	if r.Elapsed != 5 {
		t.Errorf("Elapsed = %v, expected 5", r.Elapsed)
	}
}

func TestSaverWithoutStore(t *testing.T) {
	m := solarcity.NewMachine(solarcity.Deps{Rand: rand.New(rand.NewSource(1))})
	saver := NewSaver(nil, log.New(io.Discard), 1)

	loseToStorm(t, m)
	if saver.Observe(m) {
		t.Error("Observe reported a save without a store")
	}
}

func TestFromSession(t *testing.T) {
	sess := &solarcity.Session{
		Level:           2,
		Elapsed:         6.5,
		Points:          349.6,
		CO2Avoided:      80,
		EnergyGenerated: 160,
		PanelsInstalled: 5,
		Buildings:       make([]solarcity.Building, 5),
		Outcome:         solarcity.OutcomeVictory,
	}

	r := FromSession(sess, 42)
	if r.Points != 350 {
		t.Errorf("Points = %d, expected 350", r.Points)
	}
	if !r.Won() || r.Level != 2 || r.Panels != 5 || r.Buildings != 5 || r.Seed != 42 {
		t.Errorf("unexpected run %+v", r)
	}
}
