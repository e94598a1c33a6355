package motion

import (
	"time"

	"starfocus/internal/core/model"
	"starfocus/internal/core/session"
)

// Sample is the motion output for a single frame.
type Sample struct {
	// Speed is the depth units each particle travels this frame.
	Speed float64
	// ExitProgress is the normalized position inside the break exit
	// animation, 1 once the animation has finished.
	ExitProgress float64
	// IsExitingWarp is true while the deceleration animation at the
	// start of a break is still playing.
	IsExitingWarp bool
}

// Speed derives the particle speed from the current session state.
// phaseElapsed is the time spent in the current phase and
// accumulatedWork the banked work time carried across breaks.
func Speed(state session.State, phaseElapsed, accumulatedWork time.Duration, config model.Config) Sample {
	switch state {
	case session.StateWorking:
		total := accumulatedWork + phaseElapsed
		return Sample{Speed: workingSpeed(total, config), ExitProgress: 0}

	case session.StateWorkComplete:
		// Low constant crawl; the twinkle animation carries the state.
		return Sample{Speed: 0.2 * config.BaseSpeed}

	case session.StateBreak:
		exitProgress := Clamp01(float64(phaseElapsed) / float64(config.ExitAnimationTime))
		if exitProgress < 1 {
			// Decelerate from the speed the field had when the break
			// began, decaying toward 2% of it but never to zero while
			// the animation plays.
			starting := workingSpeed(accumulatedWork, config)
			speed := starting * (1 - CubicEaseOut(exitProgress)*0.98)
			return Sample{Speed: speed, ExitProgress: exitProgress, IsExitingWarp: true}
		}
		return Sample{Speed: config.MinBreakSpeed, ExitProgress: 1}

	case session.StateBreakComplete:
		return Sample{Speed: config.MinBreakSpeed, ExitProgress: 1}

	default:
		return Sample{Speed: config.IdleSpeed}
	}
}

// MaxTrailLength bounds how long a motion-blur segment may grow this
// frame before it is discarded as a respawn-jump artifact.
func MaxTrailLength(speed float64, config model.Config) float64 {
	intensity := Clamp01(speed / config.MaxSpeed)
	return config.TrailBase + intensity*config.TrailMultiplier
}

func workingSpeed(totalElapsed time.Duration, config model.Config) float64 {
	progress := Clamp01(float64(totalElapsed) / float64(config.AccelerationTime))
	return config.IdleSpeed + (config.MaxSpeed-config.IdleSpeed)*DramaticProgress(progress)
}
