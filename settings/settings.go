// Package settings persists user preferences between runs using the
// platform's per-app data directory. All failures degrade to defaults; a
// machine where persistence is unavailable still plays fine.
package settings

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const itemName = "settings"

// Settings is the saved user preference set.
type Settings struct {
	MasterVolume float64 `json:"masterVolume"`
	Muted        bool    `json:"muted"`
	Fullscreen   bool    `json:"fullscreen"`
}

// Defaults returns the settings used when nothing is saved yet.
func Defaults() *Settings {
	return &Settings{MasterVolume: 1.0}
}

// itemStore is the persistence surface Store needs. *gdata.Manager
// implements it; tests substitute an in-memory fake.
type itemStore interface {
	LoadItem(itemName string) ([]byte, error)
	SaveItem(itemName string, data []byte) error
}

// Store loads and saves settings.
type Store struct {
	manager itemStore
}

// Open prepares the backing store. Errors are logged, not fatal: a nil
// manager makes Load return defaults and Save a no-op.
func Open(appName string) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("settings: persistence unavailable: %v", err)
		return &Store{}
	}
	return &Store{manager: m}
}

// Load returns the saved settings, or defaults when absent or unreadable.
func (s *Store) Load() *Settings {
	if s == nil || s.manager == nil {
		return Defaults()
	}
	data, err := s.manager.LoadItem(itemName)
	if err != nil || len(data) == 0 {
		return Defaults()
	}
	out := Defaults()
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("settings: corrupt saved settings, using defaults: %v", err)
		return Defaults()
	}
	return out
}

// Save writes the settings. Failures are logged and swallowed.
func (s *Store) Save(v *Settings) {
	if s == nil || s.manager == nil || v == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("settings: marshal: %v", err)
		return
	}
	if err := s.manager.SaveItem(itemName, data); err != nil {
		log.Printf("settings: save: %v", err)
	}
}
