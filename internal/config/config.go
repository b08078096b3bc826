package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Path is the preferences file, relative to the process working directory.
const Path = "config/dreamscene.json"

// Prefs holds viewer preferences persisted across runs. Scene content is
// never persisted here; scenes are rebuilt per generation.
type Prefs struct {
	AIModel     string `json:"ai_model,omitempty"`
	GridVisible bool   `json:"grid_visible"`
	ShowFPS     bool   `json:"show_fps"`
	ExportDir   string `json:"export_dir,omitempty"`
}

// Default returns default preferences (grid on, overlays off).
func Default() Prefs {
	return Prefs{
		AIModel:     "gpt-4o-mini",
		GridVisible: true,
		ShowFPS:     false,
		ExportDir:   "scenes",
	}
}

// Load reads preferences from Path. A missing or invalid file yields
// Default() and does not create a file.
func Load() (Prefs, error) {
	data, err := os.ReadFile(Path)
	if err != nil {
		return Default(), nil
	}
	var p Prefs
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	if p.AIModel == "" {
		p.AIModel = Default().AIModel
	}
	if p.ExportDir == "" {
		p.ExportDir = Default().ExportDir
	}
	return p, nil
}

// Save writes preferences to Path, creating the directory if needed.
func Save(p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(Path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(Path, data, 0644)
}
