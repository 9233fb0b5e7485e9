package solarcity

// Weather constants.
const (
	ClearSunIntensity = 1.0
	StormSunIntensity = 0.3
	StormGracePeriod  = 3.0 // Seconds of storm before the level is lost
)

// Weather holds the sun and the storm latch of a session.
//
// The storm starts the first time the level deadline is reached and never
// clears within the session. While it is active the elapsed time is frozen
// and StormGraceTimer counts instead.
type Weather struct {
	SunIntensity    float64
	StormActive     bool
	StormGraceTimer float64
}

// NewWeather returns clear weather.
func NewWeather() Weather {
	return Weather{SunIntensity: ClearSunIntensity}
}

// Latch starts the storm. It reports true only on the call that actually
// started it, so the caller can emit its one-shot cues.
func (w *Weather) Latch() bool {
	if w.StormActive {
		return false
	}
	w.StormActive = true
	w.SunIntensity = StormSunIntensity
	w.StormGraceTimer = 0
	return true
}

// Advance runs the grace timer of an active storm and reports whether the
// grace period is over. Clear weather is left untouched.
func (w *Weather) Advance(dt float64) bool {
	if !w.StormActive {
		return false
	}
	w.StormGraceTimer += dt
	return w.StormGraceTimer >= StormGracePeriod
}

// GraceLeft returns the seconds left before the storm ends the level.
func (w *Weather) GraceLeft() float64 {
	if !w.StormActive {
		return StormGracePeriod
	}
	left := StormGracePeriod - w.StormGraceTimer
	if left < 0 {
		return 0
	}
	return left
}
