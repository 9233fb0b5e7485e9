package solarcity

import (
	"math/rand"

	"github.com/vovakirdan/solar-city/internal/core"
)

// Particle physics constants. Velocities are in pixels per update step,
// independent of dt; only the fade uses dt.
const (
	BurstSize        = 15
	particleGravity  = 0.2
	particleFadeRate = 2.0
	particleMinSize  = 3
	particleMaxSize  = 8
)

// Particle is a short-lived install feedback effect.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Color core.RGB
	Size  int
	Life  float64 // 1.0 at spawn, removed once <= 0
}

// ParticlePool holds the live particles. It has no gameplay coupling.
type ParticlePool struct {
	rng       *rand.Rand
	particles []Particle
}

// NewParticlePool creates an empty pool drawing spawn jitter from rng.
func NewParticlePool(rng *rand.Rand) *ParticlePool {
	return &ParticlePool{rng: rng}
}

// SpawnBurst adds count particles at origin with random size and velocity.
func (p *ParticlePool) SpawnBurst(origin core.Vec2, color core.RGB, count int) {
	for i := 0; i < count; i++ {
		p.particles = append(p.particles, Particle{
			Pos: origin,
			Vel: core.Vec2{
				X: p.uniform(-2, 2),
				Y: p.uniform(-4, -1),
			},
			Color: color,
			Size:  particleMinSize + p.rng.Intn(particleMaxSize-particleMinSize+1),
			Life:  1.0,
		})
	}
}

// Tick moves every particle one step and drops the expired ones.
func (p *ParticlePool) Tick(dt float64) {
	alive := p.particles[:0]
	for _, pt := range p.particles {
		pt.Pos = pt.Pos.Add(pt.Vel)
		pt.Vel.Y += particleGravity
		pt.Life -= dt * particleFadeRate
		if pt.Life > 0 {
			alive = append(alive, pt)
		}
	}
	// Zero the tail so dropped particles don't linger in the backing array.
	for i := len(alive); i < len(p.particles); i++ {
		p.particles[i] = Particle{}
	}
	p.particles = alive
}

// Particles returns the live particles. Callers must not modify the slice.
func (p *ParticlePool) Particles() []Particle {
	return p.particles
}

// Len returns the number of live particles.
func (p *ParticlePool) Len() int {
	return len(p.particles)
}

// Clear removes all particles.
func (p *ParticlePool) Clear() {
	p.particles = p.particles[:0]
}

func (p *ParticlePool) uniform(lo, hi float64) float64 {
	return lo + p.rng.Float64()*(hi-lo)
}
