package model

import "time"

// Config contains the runtime settings shared by the session machine,
// the speed model and the starfield renderer. It is loaded once at
// startup and treated as read-only afterwards.
type Config struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration

	ParticleCount int

	IdleSpeed     float64
	MinBreakSpeed float64
	BaseSpeed     float64
	MaxSpeed      float64

	AccelerationTime  time.Duration
	ExitAnimationTime time.Duration

	TrailBase       float64
	TrailMultiplier float64

	RespawnDistance   float64
	RespawnExtraRange float64

	AmbientVolume float64
}

// DefaultConfig returns the standard 25/5 pomodoro configuration.
func DefaultConfig() Config {
	return Config{
		WorkDuration:      25 * time.Minute,
		BreakDuration:     5 * time.Minute,
		ParticleCount:     400,
		IdleSpeed:         0.5,
		MinBreakSpeed:     0.05,
		BaseSpeed:         2.0,
		MaxSpeed:          8.0,
		AccelerationTime:  5 * time.Minute,
		ExitAnimationTime: 1200 * time.Millisecond,
		TrailBase:         10,
		TrailMultiplier:   40,
		RespawnDistance:   1000,
		RespawnExtraRange: 500,
		AmbientVolume:     0.4,
	}
}

// Normalize replaces out-of-range values with defaults so a malformed
// settings file cannot produce a negative duration or a zero divisor
// in the speed model.
func (config Config) Normalize() Config {
	defaults := DefaultConfig()
	if config.WorkDuration <= 0 {
		config.WorkDuration = defaults.WorkDuration
	}
	if config.BreakDuration <= 0 {
		config.BreakDuration = defaults.BreakDuration
	}
	if config.ParticleCount <= 0 {
		config.ParticleCount = defaults.ParticleCount
	}
	if config.IdleSpeed < 0 {
		config.IdleSpeed = defaults.IdleSpeed
	}
	if config.MinBreakSpeed < 0 {
		config.MinBreakSpeed = defaults.MinBreakSpeed
	}
	if config.BaseSpeed <= 0 {
		config.BaseSpeed = defaults.BaseSpeed
	}
	if config.MaxSpeed <= config.IdleSpeed {
		config.MaxSpeed = defaults.MaxSpeed
	}
	if config.AccelerationTime <= 0 {
		config.AccelerationTime = defaults.AccelerationTime
	}
	if config.ExitAnimationTime <= 0 {
		config.ExitAnimationTime = defaults.ExitAnimationTime
	}
	if config.TrailBase <= 0 {
		config.TrailBase = defaults.TrailBase
	}
	if config.TrailMultiplier < 0 {
		config.TrailMultiplier = defaults.TrailMultiplier
	}
	if config.RespawnDistance <= 0 {
		config.RespawnDistance = defaults.RespawnDistance
	}
	if config.RespawnExtraRange < 0 {
		config.RespawnExtraRange = defaults.RespawnExtraRange
	}
	if config.AmbientVolume < 0 {
		config.AmbientVolume = 0
	}
	if config.AmbientVolume > 1 {
		config.AmbientVolume = 1
	}
	return config
}
