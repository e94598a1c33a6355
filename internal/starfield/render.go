package starfield

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"starfocus/internal/core/model"
	"starfocus/internal/core/motion"
	"starfocus/internal/core/session"
	"starfocus/internal/theme"
)

const (
	// cullMargin is how far outside the canvas a star may project
	// before drawing is skipped.
	cullMargin = 100.0
	// flashWindow and flashPeak shape the white flash at the start of
	// the break exit animation.
	flashWindow = 300 * time.Millisecond
	flashPeak   = 0.15
	// trailSegments approximates the trail gradient with stepped
	// alpha; the vector package has no gradient stroke.
	trailSegments = 6
)

// Renderer paints a Field onto an ebiten image. It holds no mutable
// state of its own; all particle mutation happens in Field.Step.
type Renderer struct {
	config model.Config
	field  *Field
}

// NewRenderer creates a renderer for the given field.
func NewRenderer(config model.Config, field *Field) *Renderer {
	return &Renderer{config: config, field: field}
}

// Draw paints the current field state. Field.Step must have run for
// this frame already; Draw itself is read-only.
func (renderer *Renderer) Draw(dst *ebiten.Image, frame Frame, colors theme.Theme) {
	dst.Fill(colors.Background)

	width := float64(frame.Width)
	height := float64(frame.Height)
	maxTrail := motion.MaxTrailLength(frame.Speed, renderer.config)

	for i := range renderer.field.particles {
		p := &renderer.field.particles[i]

		if p.ScreenX < -cullMargin || p.ScreenX > width+cullMargin ||
			p.ScreenY < -cullMargin || p.ScreenY > height+cullMargin {
			continue
		}

		size, opacity := particleAppearance(p, frame.State)
		starColor := colors.Star
		if p.Secondary && colors.HasSecondary {
			starColor = colors.Secondary
		}

		if trailVisible(frame, p.HasValidPrev) {
			dist := math.Hypot(p.ScreenX-p.PrevX, p.ScreenY-p.PrevY)
			if dist > 0.3 && dist < maxTrail {
				renderer.drawTrail(dst, p, frame, starColor, size)
			}
		}

		vector.DrawFilledCircle(dst, float32(p.ScreenX), float32(p.ScreenY),
			float32(size), scaleAlpha(starColor, opacity), true)
	}

	if frame.IsExitingWarp && frame.PhaseElapsed < flashWindow {
		alpha := flashPeak * (1 - float64(frame.PhaseElapsed)/float64(flashWindow))
		white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		vector.DrawFilledRect(dst, 0, 0, float32(width), float32(height),
			scaleAlpha(white, alpha), false)
	}

	if frame.State == session.StateWorkComplete && frame.FadeOpacity > 0 {
		alpha := math.Min(frame.FadeOpacity, 0.5)
		vector.DrawFilledRect(dst, 0, 0, float32(width), float32(height),
			scaleAlpha(color.RGBA{A: 0xff}, alpha), false)
	}
}

func (renderer *Renderer) drawTrail(dst *ebiten.Image, p *Particle, frame Frame, starColor color.RGBA, size float64) {
	startAlpha, endAlpha := trailAlphas(frame, renderer.config)
	lineWidth := float32(math.Max(size*2, 2.0))

	for seg := 0; seg < trailSegments; seg++ {
		t0 := float64(seg) / trailSegments
		t1 := float64(seg+1) / trailSegments
		x0 := p.PrevX + (p.ScreenX-p.PrevX)*t0
		y0 := p.PrevY + (p.ScreenY-p.PrevY)*t0
		x1 := p.PrevX + (p.ScreenX-p.PrevX)*t1
		y1 := p.PrevY + (p.ScreenY-p.PrevY)*t1
		alpha := startAlpha + (endAlpha-startAlpha)*t0
		vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1),
			lineWidth, scaleAlpha(starColor, alpha), true)
	}
}

// trailVisible gates motion-blur drawing: only fast frames, only with
// a trustworthy previous position, and only while working or during
// the warp exit.
func trailVisible(frame Frame, hasValidPrev bool) bool {
	if frame.Speed <= 0.5 || !hasValidPrev {
		return false
	}
	return frame.State == session.StateWorking || frame.IsExitingWarp
}

// trailAlphas returns the gradient endpoints: near-transparent at the
// trail's old end, speed-scaled at the star.
func trailAlphas(frame Frame, config model.Config) (float64, float64) {
	intensity := motion.Clamp01(frame.Speed / config.MaxSpeed)
	start := intensity * 0.1
	end := math.Min(frame.Speed/8, 0.95)
	if frame.IsExitingWarp {
		scale := 1 - frame.ExitProgress*0.7
		start *= scale
		end *= scale
	}
	return start, end
}

// particleAppearance resolves radius and opacity, applying the
// twinkle modulation in the work-complete state.
func particleAppearance(p *Particle, state session.State) (float64, float64) {
	size := BaseSize(p.Z)
	if state != session.StateWorkComplete {
		return size, 1.0
	}
	twinkle := TwinkleIntensity(p.TwinklePhase)
	return size * (0.5 + twinkle*0.8), 0.3 + twinkle*0.7
}

// scaleAlpha premultiplies a color by an opacity in [0, 1].
func scaleAlpha(c color.RGBA, alpha float64) color.RGBA {
	alpha = motion.Clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
