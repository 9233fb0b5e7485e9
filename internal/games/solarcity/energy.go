package solarcity

// Scoring constants.
const (
	surplusPointsPerSecond = 10.0
	speedrunPointsPerSec   = 100.0
	installPoints          = 50.0
	co2PerEnergyUnit       = 0.5
)

// stepResult is what one energy integration step decided.
type stepResult int

const (
	stepContinue stepResult = iota
	stepVictory
	stepBlackout
)

// integrate advances the energy balance by dt seconds. It only runs before
// the deadline; the step is cut so Elapsed never passes TargetTime.
//
// Points accrue only while the balance is positive. A negative balance
// costs energy but never points.
func (s *Session) integrate(dt float64) stepResult {
	if s.Elapsed >= s.TargetTime {
		return stepContinue
	}

	step := dt
	if left := s.TargetTime - s.Elapsed; step >= left {
		step = left
		s.Elapsed = s.TargetTime
	} else {
		s.Elapsed += step
	}

	generation := s.TotalGeneration()
	net := generation - s.TotalConsumption()

	s.Energy += net * step
	s.EnergyGenerated += generation * step
	s.CO2Avoided += generation * step * co2PerEnergyUnit

	if net > 0 {
		s.Points += step * surplusPointsPerSecond
	}

	blackout := false
	if s.Energy <= 0 {
		s.Energy = 0
		blackout = true
	}

	// Winning takes precedence over a blackout in the same step.
	if s.AllInstalled() {
		s.Points += (s.TargetTime - s.Elapsed) * speedrunPointsPerSec
		s.Elapsed = s.TargetTime
		return stepVictory
	}
	if blackout {
		return stepBlackout
	}
	return stepContinue
}
