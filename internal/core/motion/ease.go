// Package motion maps session state and elapsed time to the scalar
// speed that drives the starfield. All functions here are pure.
package motion

// Clamp01 limits a progress value to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Smoothstep maps linear progress to the classic S-curve t²(3-2t).
func Smoothstep(t float64) float64 {
	t = Clamp01(t)
	return t * t * (3 - 2*t)
}

// CubicEaseOut decelerates sharply at first and settles gently: 1-(1-t)³.
func CubicEaseOut(t float64) float64 {
	t = Clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// DramaticProgress squares the smoothstep curve, giving a slower start
// and a sharper finish than smoothstep alone.
func DramaticProgress(t float64) float64 {
	s := Smoothstep(t)
	return s * s
}
