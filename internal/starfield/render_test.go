package starfield

import (
	"image/color"
	"math"
	"testing"

	"starfocus/internal/core/model"
	"starfocus/internal/core/session"
)

func TestTrailVisible(t *testing.T) {
	tests := []struct {
		name         string
		frame        Frame
		hasValidPrev bool
		want         bool
	}{
		{"Working at speed", Frame{State: session.StateWorking, Speed: 4}, true, true},
		{"Working too slow", Frame{State: session.StateWorking, Speed: 0.5}, true, false},
		{"Working no prev", Frame{State: session.StateWorking, Speed: 4}, false, false},
		{"Idle at speed", Frame{State: session.StateIdle, Speed: 4}, true, false},
		{"Break exiting", Frame{State: session.StateBreak, Speed: 4, IsExitingWarp: true}, true, true},
		{"Break hold", Frame{State: session.StateBreak, Speed: 4}, true, false},
		{"Work complete", Frame{State: session.StateWorkComplete, Speed: 4}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trailVisible(tt.frame, tt.hasValidPrev); got != tt.want {
				t.Errorf("trailVisible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrailAlphas(t *testing.T) {
	config := model.DefaultConfig()

	start, end := trailAlphas(Frame{State: session.StateWorking, Speed: config.MaxSpeed}, config)
	if math.Abs(start-0.1) > 1e-9 {
		t.Errorf("start alpha at max speed = %v, want 0.1", start)
	}
	if math.Abs(end-0.95) > 1e-9 {
		t.Errorf("end alpha at max speed = %v, want capped 0.95", end)
	}

	// The exit animation attenuates both endpoints.
	exitStart, exitEnd := trailAlphas(Frame{
		State:         session.StateBreak,
		Speed:         config.MaxSpeed,
		IsExitingWarp: true,
		ExitProgress:  1,
	}, config)
	if math.Abs(exitStart-start*0.3) > 1e-9 || math.Abs(exitEnd-end*0.3) > 1e-9 {
		t.Errorf("exit alphas = (%v,%v), want (%v,%v)", exitStart, exitEnd, start*0.3, end*0.3)
	}

	// Below the cap the end alpha scales with speed/8.
	_, slowEnd := trailAlphas(Frame{State: session.StateWorking, Speed: 4}, config)
	if math.Abs(slowEnd-0.5) > 1e-9 {
		t.Errorf("end alpha at speed 4 = %v, want 0.5", slowEnd)
	}
}

func TestParticleAppearance(t *testing.T) {
	p := &Particle{Z: 500}

	size, opacity := particleAppearance(p, session.StateWorking)
	if size != 1.5 || opacity != 1.0 {
		t.Errorf("working appearance = (%v,%v), want (1.5,1.0)", size, opacity)
	}

	// In work-complete, the twinkle modulates both size and opacity.
	p.TwinklePhase = math.Pi / 2 // intensity 1
	size, opacity = particleAppearance(p, session.StateWorkComplete)
	if math.Abs(size-1.5*1.3) > 1e-9 {
		t.Errorf("twinkle size = %v, want %v", size, 1.5*1.3)
	}
	if math.Abs(opacity-1.0) > 1e-9 {
		t.Errorf("twinkle opacity = %v, want 1.0", opacity)
	}

	p.TwinklePhase = -math.Pi / 2 // intensity 0
	size, opacity = particleAppearance(p, session.StateWorkComplete)
	if math.Abs(size-0.75) > 1e-9 {
		t.Errorf("dim twinkle size = %v, want 0.75", size)
	}
	if math.Abs(opacity-0.3) > 1e-9 {
		t.Errorf("dim twinkle opacity = %v, want 0.3", opacity)
	}
}

func TestScaleAlpha(t *testing.T) {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	tests := []struct {
		name  string
		alpha float64
		want  color.RGBA
	}{
		{"Opaque", 1, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"Half", 0.5, color.RGBA{0x7f, 0x7f, 0x7f, 0x7f}},
		{"Transparent", 0, color.RGBA{}},
		{"Clamped high", 2, color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{"Clamped low", -1, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scaleAlpha(white, tt.alpha); got != tt.want {
				t.Errorf("scaleAlpha = %v, want %v", got, tt.want)
			}
		})
	}
}
