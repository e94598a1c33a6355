package storage

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"starfocus/internal/theme"
)

// Prefs are the small user preferences persisted between runs. The
// core only produces these values; this store owns reading and
// writing them.
type Prefs struct {
	CompletedSessions int    `yaml:"completed_sessions"`
	ThemeKey          string `yaml:"theme_key"`
	SoundEnabled      bool   `yaml:"sound_enabled"`
}

// DefaultPrefs returns the preferences for a first run.
func DefaultPrefs() Prefs {
	return Prefs{
		ThemeKey:     theme.DefaultKey,
		SoundEnabled: true,
	}
}

const (
	prefsObject   = "prefs"
	prefsProperty = "user"
)

// PrefsStore persists Prefs through a cross-platform gdata manager.
// A nil manager degrades to in-memory preferences.
type PrefsStore struct {
	manager *gdata.Manager
	prefs   Prefs
}

// OpenPrefs creates a store and loads any previously saved
// preferences. Load failures are not fatal; defaults are used.
func OpenPrefs(manager *gdata.Manager) (*PrefsStore, error) {
	store := &PrefsStore{
		manager: manager,
		prefs:   DefaultPrefs(),
	}
	if err := store.load(); err != nil {
		return store, err
	}
	return store, nil
}

// Prefs returns the current in-memory preferences.
func (store *PrefsStore) Prefs() Prefs {
	return store.prefs
}

// Update replaces the in-memory preferences and persists them.
func (store *PrefsStore) Update(prefs Prefs) error {
	if prefs.CompletedSessions < 0 {
		prefs.CompletedSessions = 0
	}
	store.prefs = prefs
	return store.save()
}

func (store *PrefsStore) load() error {
	if store.manager == nil {
		return nil
	}
	if !store.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}
	data, err := store.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}
	var loaded Prefs
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse prefs yaml: %w", err)
	}
	if loaded.ThemeKey == "" {
		loaded.ThemeKey = theme.DefaultKey
	}
	if loaded.CompletedSessions < 0 {
		loaded.CompletedSessions = 0
	}
	store.prefs = loaded
	return nil
}

func (store *PrefsStore) save() error {
	if store.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(store.prefs)
	if err != nil {
		return fmt.Errorf("marshal prefs yaml: %w", err)
	}
	if err := store.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}
