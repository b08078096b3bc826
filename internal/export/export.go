// Package export writes a scene snapshot to disk: timestamp, background
// color, and per-object transforms. The format matches what the generation
// side produces so an exported scene can be re-imported elsewhere.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dreamscene/internal/entity"
)

// Vec is a JSON-friendly 3-vector.
type Vec struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

// Object is one exported entity transform.
type Object struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Position Vec    `json:"position"`
	Rotation Vec    `json:"rotation"`
	Scale    Vec    `json:"scale"`
}

// Scene is the full export document.
type Scene struct {
	Timestamp  string   `json:"timestamp"`
	Background string   `json:"background"`
	Objects    []Object `json:"objects"`
}

// Snapshot captures the current entity transforms. Background is formatted
// as "#RRGGBB"; the timestamp is ISO-8601 in UTC.
func Snapshot(entities []*entity.Entity, background uint32, now time.Time) Scene {
	s := Scene{
		Timestamp:  now.UTC().Format(time.RFC3339),
		Background: fmt.Sprintf("#%06X", background&0xFFFFFF),
		Objects:    make([]Object, 0, len(entities)),
	}
	for _, e := range entities {
		tr := e.Transform
		s.Objects = append(s.Objects, Object{
			Name:     e.Name,
			Type:     e.Type,
			Position: Vec{tr.Position.X, tr.Position.Y, tr.Position.Z},
			Rotation: Vec{tr.Rotation.X, tr.Rotation.Y, tr.Rotation.Z},
			Scale:    Vec{tr.Scale.X, tr.Scale.Y, tr.Scale.Z},
		})
	}
	return s
}

// Save writes the scene as indented JSON, creating the directory if needed.
func Save(path string, s Scene) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(s, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
