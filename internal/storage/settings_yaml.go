package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"starfocus/internal/core/model"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes         int     `yaml:"work_minutes"`
	BreakMinutes        int     `yaml:"break_minutes"`
	ParticleCount       int     `yaml:"particle_count"`
	IdleSpeed           float64 `yaml:"idle_speed"`
	MinBreakSpeed       float64 `yaml:"min_break_speed"`
	BaseSpeed           float64 `yaml:"base_speed"`
	MaxSpeed            float64 `yaml:"max_speed"`
	AccelerationMinutes int     `yaml:"acceleration_minutes"`
	ExitAnimationMillis int     `yaml:"exit_animation_millis"`
	TrailBase           float64 `yaml:"trail_base"`
	TrailMultiplier     float64 `yaml:"trail_multiplier"`
	RespawnDistance     float64 `yaml:"respawn_distance"`
	RespawnExtraRange   float64 `yaml:"respawn_extra_range"`
	AmbientVolume       float64 `yaml:"ambient_volume"`
}

// LoadConfig reads the runtime configuration from YAML. If the config
// file does not exist, defaults are returned.
func LoadConfig(appName string) (model.Config, error) {
	config := model.DefaultConfig()
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return config, err
	}

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return config, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&config, fileData)
	return config.Normalize(), nil
}

// SaveConfig writes the runtime configuration to YAML.
func SaveConfig(appName string, config model.Config) error {
	configPath, err := resolveConfigPath(appName)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		WorkMinutes:         int(config.WorkDuration / time.Minute),
		BreakMinutes:        int(config.BreakDuration / time.Minute),
		ParticleCount:       config.ParticleCount,
		IdleSpeed:           config.IdleSpeed,
		MinBreakSpeed:       config.MinBreakSpeed,
		BaseSpeed:           config.BaseSpeed,
		MaxSpeed:            config.MaxSpeed,
		AccelerationMinutes: int(config.AccelerationTime / time.Minute),
		ExitAnimationMillis: int(config.ExitAnimationTime / time.Millisecond),
		TrailBase:           config.TrailBase,
		TrailMultiplier:     config.TrailMultiplier,
		RespawnDistance:     config.RespawnDistance,
		RespawnExtraRange:   config.RespawnExtraRange,
		AmbientVolume:       config.AmbientVolume,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(config *model.Config, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		config.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.BreakMinutes > 0 {
		config.BreakDuration = time.Duration(fileData.BreakMinutes) * time.Minute
	}
	if fileData.ParticleCount > 0 {
		config.ParticleCount = fileData.ParticleCount
	}
	if fileData.IdleSpeed > 0 {
		config.IdleSpeed = fileData.IdleSpeed
	}
	if fileData.MinBreakSpeed > 0 {
		config.MinBreakSpeed = fileData.MinBreakSpeed
	}
	if fileData.BaseSpeed > 0 {
		config.BaseSpeed = fileData.BaseSpeed
	}
	if fileData.MaxSpeed > 0 {
		config.MaxSpeed = fileData.MaxSpeed
	}
	if fileData.AccelerationMinutes > 0 {
		config.AccelerationTime = time.Duration(fileData.AccelerationMinutes) * time.Minute
	}
	if fileData.ExitAnimationMillis > 0 {
		config.ExitAnimationTime = time.Duration(fileData.ExitAnimationMillis) * time.Millisecond
	}
	if fileData.TrailBase > 0 {
		config.TrailBase = fileData.TrailBase
	}
	if fileData.TrailMultiplier > 0 {
		config.TrailMultiplier = fileData.TrailMultiplier
	}
	if fileData.RespawnDistance > 0 {
		config.RespawnDistance = fileData.RespawnDistance
	}
	if fileData.RespawnExtraRange > 0 {
		config.RespawnExtraRange = fileData.RespawnExtraRange
	}
	if fileData.AmbientVolume > 0 {
		config.AmbientVolume = fileData.AmbientVolume
	}
}
