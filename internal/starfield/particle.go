// Package starfield simulates and renders the particle field whose
// velocity visualizes elapsed work time.
package starfield

// Particle is a single star in depth space. Z is the distance from the
// viewer and shrinks as the star approaches; the planar X/Y offset is
// fixed at spawn unless the break exit animation pulls it inward.
type Particle struct {
	X, Y, Z float64

	// ScreenX/ScreenY hold this frame's projection, PrevX/PrevY last
	// frame's. HasValidPrev is cleared on respawn so no trail is drawn
	// from the teleported-away position.
	ScreenX, ScreenY float64
	PrevX, PrevY     float64
	HasValidPrev     bool

	TwinklePhase float64
	TwinkleSpeed float64

	// Secondary tags the particle with the theme's second star color.
	Secondary bool

	projected bool
}
