package starfield

import (
	"math"
	"math/rand"
	"time"

	"starfocus/internal/core/model"
	"starfocus/internal/core/session"
)

const (
	// minDepth is the recycle threshold; a star at or below it has
	// passed the viewer.
	minDepth = 1.0
	// spawnHalfExtent bounds the random planar spawn square.
	spawnHalfExtent = 1000.0
	// focalLength scales the perspective projection.
	focalLength = 300.0
	// depthReference normalizes depth for the size falloff.
	depthReference = 1000.0
	// collapseFactor scales the per-frame inward pull during the break
	// exit animation.
	collapseFactor = 0.01
	// secondaryBias is the chance a spawn picks the secondary color.
	secondaryBias = 0.3
)

// Frame carries the per-frame inputs for one simulation step.
type Frame struct {
	State         session.State
	Speed         float64
	ExitProgress  float64
	IsExitingWarp bool
	PhaseElapsed  time.Duration
	// FadeOpacity is the externally driven black fade shown in the
	// work-complete state.
	FadeOpacity   float64
	TwoColor      bool
	Width, Height int
}

// Field owns a fixed-size collection of particles. The random source
// is threaded through explicitly so tests can seed it.
type Field struct {
	particles []Particle
	rng       *rand.Rand
	config    model.Config
}

// NewField creates and populates a field of config.ParticleCount stars.
func NewField(config model.Config, rng *rand.Rand) *Field {
	field := &Field{
		particles: make([]Particle, config.ParticleCount),
		rng:       rng,
		config:    config,
	}
	for i := range field.particles {
		p := &field.particles[i]
		field.respawn(p, true)
		// Spread initial depth across the whole volume so the field
		// does not arrive as a single wavefront.
		p.Z = minDepth + rng.Float64()*(config.RespawnDistance+config.RespawnExtraRange-minDepth)
	}
	return field
}

// Particles exposes the particle slice for rendering and tests. The
// renderer borrows it for the duration of a frame only.
func (field *Field) Particles() []Particle {
	return field.particles
}

// Step advances every particle by one frame: twinkle, movement per
// session state, respawn of stars that passed the viewer, and the
// screen projection used by the renderer and by next frame's trails.
func (field *Field) Step(frame Frame) {
	centerX := float64(frame.Width) / 2
	centerY := float64(frame.Height) / 2
	onBreak := frame.State == session.StateBreak || frame.State == session.StateBreakComplete

	for i := range field.particles {
		p := &field.particles[i]

		// Last frame's projection becomes the trail origin.
		if p.projected {
			p.PrevX, p.PrevY = p.ScreenX, p.ScreenY
			p.HasValidPrev = true
		}

		// Twinkle advances in every state so work-complete starts from
		// an organic phase distribution.
		p.TwinklePhase += p.TwinkleSpeed

		switch {
		case onBreak && frame.IsExitingWarp:
			force := frame.ExitProgress * 0.3
			p.X -= p.X * force * collapseFactor
			p.Y -= p.Y * force * collapseFactor
			p.Z -= frame.Speed
		case onBreak:
			// Post-exit hold: the field stands still.
		default:
			p.Z -= frame.Speed
		}

		if p.Z <= minDepth {
			field.respawn(p, frame.TwoColor)
		}

		p.ScreenX, p.ScreenY = Project(p.X, p.Y, p.Z, centerX, centerY)
		p.projected = true
	}
}

// respawn recycles a particle at a fresh planar position behind the
// respawn distance and invalidates its trail origin.
func (field *Field) respawn(p *Particle, twoColor bool) {
	p.X = (field.rng.Float64()*2 - 1) * spawnHalfExtent
	p.Y = (field.rng.Float64()*2 - 1) * spawnHalfExtent
	p.Z = field.config.RespawnDistance + field.rng.Float64()*field.config.RespawnExtraRange
	p.HasValidPrev = false
	p.TwinklePhase = field.rng.Float64() * 2 * math.Pi
	p.TwinkleSpeed = 0.02 + field.rng.Float64()*0.08
	p.Secondary = twoColor && field.rng.Float64() < secondaryBias
}

// Project maps a depth-space position to screen space with a fixed
// focal length.
func Project(x, y, z, centerX, centerY float64) (float64, float64) {
	return x/z*focalLength + centerX, y/z*focalLength + centerY
}

// BaseSize returns the projected star radius: closer stars are larger,
// with a floor so distant stars stay visible.
func BaseSize(z float64) float64 {
	size := (1 - z/depthReference) * 3.0
	if size < 0.4 {
		return 0.4
	}
	return size
}

// TwinkleIntensity maps a twinkle phase to [0, 1].
func TwinkleIntensity(phase float64) float64 {
	return (math.Sin(phase) + 1) / 2
}
