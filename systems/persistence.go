package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/brawler/config"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	DisplayAttackBoxes bool    `json:"displayAttackBoxes"`
	SFXVolume          float64 `json:"sfxVolume"`
	Muted              bool    `json:"muted"`
}

// ItemStore is the part of gdata.Manager the settings code uses.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore ItemStore

// InitPersistence opens the gdata store for settings
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.ConfigName,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	settingsStore = m
	return nil
}

// UseSettingsStore replaces the backing store.
func UseSettingsStore(s ItemStore) {
	settingsStore = s
}

// LoadSettings loads settings from disk. A nil result without an error means
// nothing is saved. Callers log failures and fall back to defaults.
func LoadSettings() (*SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(settingsKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := settingsStore.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// CurrentSettings captures the live settings.
func CurrentSettings(sfx *SFX) *SavedSettings {
	return &SavedSettings{
		DisplayAttackBoxes: cfg.Env.DisplayAttackBoxes,
		SFXVolume:          sfx.Volume(),
		Muted:              sfx.Muted(),
	}
}

// ApplySavedSettings applies loaded settings to the environment and sound.
func ApplySavedSettings(saved *SavedSettings, sfx *SFX) {
	if saved == nil {
		return
	}
	cfg.Env.DisplayAttackBoxes = saved.DisplayAttackBoxes
	if sfx != nil {
		sfx.SetVolume(saved.SFXVolume)
		sfx.SetMuted(saved.Muted)
	}
}
