package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"starfocus/internal/core/model"
)

func testConfigDir(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", tempDir)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	testConfigDir(t)

	config, err := LoadConfig("starfocus_test")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config != model.DefaultConfig() {
		t.Errorf("config = %+v, want defaults", config)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	testConfigDir(t)

	saved := model.DefaultConfig()
	saved.WorkDuration = 50 * time.Minute
	saved.BreakDuration = 10 * time.Minute
	saved.ParticleCount = 250
	saved.MaxSpeed = 12
	saved.AmbientVolume = 0.8

	if err := SaveConfig("starfocus_test", saved); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	loaded, err := LoadConfig("starfocus_test")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded != saved {
		t.Errorf("loaded config = %+v, want %+v", loaded, saved)
	}
}

func TestLoadConfigMalformedYaml(t *testing.T) {
	testConfigDir(t)

	configDir, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir: %v", err)
	}
	dir := filepath.Join(configDir, "starfocus_test")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, settingsFileName), []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	config, err := LoadConfig("starfocus_test")
	if err == nil {
		t.Error("LoadConfig returned nil error for malformed yaml")
	}
	if config != model.DefaultConfig() {
		t.Errorf("config after parse failure = %+v, want defaults", config)
	}
}

func TestApplyYamlSettingsIgnoresNonPositive(t *testing.T) {
	config := model.DefaultConfig()
	applyYamlSettings(&config, yamlSettings{
		WorkMinutes:   -5,
		ParticleCount: 0,
		MaxSpeed:      -1,
	})
	if config != model.DefaultConfig() {
		t.Errorf("non-positive fields overwrote defaults: %+v", config)
	}
}

func TestApplyYamlSettingsAppliesPositive(t *testing.T) {
	config := model.DefaultConfig()
	applyYamlSettings(&config, yamlSettings{
		WorkMinutes:         30,
		ExitAnimationMillis: 800,
	})
	if config.WorkDuration != 30*time.Minute {
		t.Errorf("WorkDuration = %v, want 30m", config.WorkDuration)
	}
	if config.ExitAnimationTime != 800*time.Millisecond {
		t.Errorf("ExitAnimationTime = %v, want 800ms", config.ExitAnimationTime)
	}
}
