package solarcity

// EventKind identifies a side effect requested by the simulation.
type EventKind int

const (
	EventPlayThunder EventKind = iota
	EventPlayVictory
	EventPlayDefeat
	EventSetMusicVolume
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPlayThunder:
		return "playThunder"
	case EventPlayVictory:
		return "playVictory"
	case EventPlayDefeat:
		return "playDefeat"
	case EventSetMusicVolume:
		return "setMusicVolume"
	default:
		return "unknown"
	}
}

// Volume is the ambient music level requested by EventSetMusicVolume.
type Volume int

const (
	VolumeNormal Volume = iota
	VolumeLow
)

// String returns the volume name.
func (v Volume) String() string {
	if v == VolumeLow {
		return "low"
	}
	return "normal"
}

// Event is a fire-and-forget request for the audio/presentation layer.
type Event struct {
	Kind   EventKind
	Volume Volume // Only meaningful for EventSetMusicVolume
}

// Emitter receives events from the simulation. Emit must not block and the
// simulation never learns whether the request succeeded.
type Emitter interface {
	Emit(Event)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(Event)

// Emit calls f(e).
func (f EmitterFunc) Emit(e Event) {
	f(e)
}

// Multi fans an event out to several emitters in order.
type Multi []Emitter

// Emit forwards e to every emitter.
func (m Multi) Emit(e Event) {
	for _, em := range m {
		if em != nil {
			em.Emit(e)
		}
	}
}

type nopEmitter struct{}

func (nopEmitter) Emit(Event) {}

// Recorder keeps every emitted event. Useful for tests and replays.
type Recorder struct {
	Events []Event
}

// Emit appends e to the recorded events.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []EventKind {
	kinds := make([]EventKind, len(r.Events))
	for i, e := range r.Events {
		kinds[i] = e.Kind
	}
	return kinds
}

func playThunder() Event { return Event{Kind: EventPlayThunder} }
func playVictory() Event { return Event{Kind: EventPlayVictory} }
func playDefeat() Event  { return Event{Kind: EventPlayDefeat} }

func setMusicVolume(v Volume) Event {
	return Event{Kind: EventSetMusicVolume, Volume: v}
}
