package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// SearchCommandScoop and SearchCommandScoopSearch are the two supported
// search tools. scoop-search is a faster third-party reimplementation with a
// different output format.
const (
	SearchCommandScoop       = "scoop"
	SearchCommandScoopSearch = "scoop-search"
)

// Settings holds user-adjustable preferences persisted as JSON
type Settings struct {
	SearchCommand string `json:"search_command"`
	TurboMode     bool   `json:"turbo_mode"`
}

// DefaultSettings returns the settings used when no file exists yet
func DefaultSettings() Settings {
	return Settings{SearchCommand: SearchCommandScoop}
}

// SettingsStore reads and writes the settings file. Values are loaded on
// demand and passed explicitly to the components that need them.
type SettingsStore struct {
	path string
	mu   sync.Mutex
}

// NewSettingsStore creates a store backed by the given file path
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Load reads the current settings, falling back to defaults if the file is
// missing or unreadable
func (s *SettingsStore) Load() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return DefaultSettings()
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings()
	}
	if settings.SearchCommand == "" {
		settings.SearchCommand = SearchCommandScoop
	}
	return settings
}

// Save writes the settings to disk, creating the parent directory if needed
func (s *SettingsStore) Save(settings Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
