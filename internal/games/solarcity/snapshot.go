package solarcity

// Snapshot is a read-only copy of everything a host draws in one frame.
// Mutating it never affects the machine.
type Snapshot struct {
	State     State
	Level     int
	Session   Session
	Particles []Particle
	Buttons   []Button
}

// Snapshot copies the current state, session, roster and particles.
func (m *Machine) Snapshot() Snapshot {
	s := *m.session
	s.Buildings = append([]Building(nil), m.session.Buildings...)

	return Snapshot{
		State:     m.state,
		Level:     m.level,
		Session:   s,
		Particles: append([]Particle(nil), m.particles.Particles()...),
		Buttons:   Buttons(m.state, m.level),
	}
}

// Lightning reports whether a storm flash should be drawn this frame.
// The draw comes from the caller's random source since it is purely visual.
func (s Snapshot) Lightning(roll float64) bool {
	return s.Session.StormActive && roll < lightningChance
}

const lightningChance = 0.02
