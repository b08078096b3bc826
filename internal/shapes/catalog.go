package shapes

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Def is one catalog entry: a shape type the generator may ask for, the
// mesh kind that renders it, and mesh resolution defaults.
type Def struct {
	Type    string   `yaml:"type"`
	Kind    string   `yaml:"kind"`
	Aliases []string `yaml:"aliases,omitempty"`
	Rings   int32    `yaml:"rings,omitempty"`
	Slices  int32    `yaml:"slices,omitempty"`
}

type catalogFile struct {
	Shapes []Def `yaml:"shapes"`
}

//go:embed catalog.yaml
var catalogYAML []byte

// loadCatalog parses the embedded catalog into a lookup keyed by type and
// alias, all lowercased.
func loadCatalog() (map[string]Def, error) {
	var file catalogFile
	if err := yaml.Unmarshal(catalogYAML, &file); err != nil {
		return nil, fmt.Errorf("shape catalog: %w", err)
	}
	defs := make(map[string]Def)
	for _, d := range file.Shapes {
		defs[strings.ToLower(d.Type)] = d
		for _, a := range d.Aliases {
			defs[strings.ToLower(a)] = d
		}
	}
	return defs, nil
}
