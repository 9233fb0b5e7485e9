// Package runlog records finished levels in the run log.
// Both hosts call Saver.Observe after feeding input to the machine.
package runlog

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/solar-city/internal/games/solarcity"
	"github.com/vovakirdan/solar-city/internal/storage"
)

// Saver writes one run per finished level.
type Saver struct {
	store  *storage.Store // nil disables saving
	logger *log.Logger
	seed   int64
	saved  bool // Whether the current terminal state was already written
}

// NewSaver creates a saver. A nil store makes Observe a no-op apart from
// tracking state.
func NewSaver(store *storage.Store, logger *log.Logger, seed int64) *Saver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Saver{store: store, logger: logger, seed: seed}
}

// Observe saves the session the first time the machine is seen in a
// terminal state and rearms once it leaves it.
// It returns true when a run was written.
func (s *Saver) Observe(m *solarcity.Machine) bool {
	if !m.State().Terminal() {
		s.saved = false
		return false
	}
	if s.saved {
		return false
	}
	s.saved = true

	if s.store == nil {
		return false
	}

	run := FromSession(m.Session(), s.seed)
	id, err := s.store.SaveRun(run)
	if err != nil {
		s.logger.Warn("cannot save run", "err", err)
		return false
	}
	s.logger.Info("run saved", "run", id, "level", run.Level, "outcome", run.Outcome, "points", run.Points)
	return true
}

// FromSession converts a finished session into a run log row.
func FromSession(sess *solarcity.Session, seed int64) storage.Run {
	return storage.Run{
		Level:           sess.Level,
		Outcome:         sess.Outcome.String(),
		Points:          int(math.Round(sess.Points)),
		Panels:          sess.PanelsInstalled,
		Buildings:       len(sess.Buildings),
		CO2Avoided:      sess.CO2Avoided,
		EnergyGenerated: sess.EnergyGenerated,
		Elapsed:         sess.Elapsed,
		Seed:            seed,
	}
}
