// Package loader reads chain definition files. A definition is a single
// YAML document naming the chain, its start state, and the transition table.
package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/okanara/markov/pkg/chain"
	"gopkg.in/yaml.v3"
)

// Meta carries the free-form metadata block of a definition, decoded into
// the fields the tooling cares about. Unrecognized keys are kept in Extra.
type Meta struct {
	Author string         `mapstructure:"author"`
	Source string         `mapstructure:"source"`
	Tags   []string       `mapstructure:"tags"`
	Extra  map[string]any `mapstructure:",remain"`
}

// Definition is a fully parsed and validated chain file.
type Definition struct {
	Name        string
	Description string
	Start       chain.State
	Meta        Meta
	Model       *chain.Model
}

// chainFile mirrors the YAML layout of a chain file.
type chainFile struct {
	Name        string                        `yaml:"name"`
	Description string                        `yaml:"description"`
	Start       string                        `yaml:"start"`
	Metadata    map[string]any                `yaml:"metadata"`
	States      map[string]map[string]float64 `yaml:"states"`
}

// Load reads and validates the chain definition at path.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain file: %w", err)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if def.Name == "" {
		// Fall back to the file name, the way a project directory names a
		// graph.
		base := filepath.Base(path)
		def.Name = base[:len(base)-len(filepath.Ext(base))]
	}
	return def, nil
}

// Parse validates a chain definition from raw YAML.
func Parse(data []byte) (*Definition, error) {
	var doc chainFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	if len(doc.States) == 0 {
		return nil, fmt.Errorf("chain file defines no states")
	}

	rows := make(map[chain.State]chain.Distribution, len(doc.States))
	for src, row := range doc.States {
		dist := make(chain.Distribution, len(row))
		for target, p := range row {
			dist[chain.State(target)] = p
		}
		rows[chain.State(src)] = dist
	}

	model, err := chain.New(rows)
	if err != nil {
		return nil, err
	}

	if doc.Start == "" {
		return nil, fmt.Errorf("chain file does not declare a start state")
	}
	start := chain.State(doc.Start)
	if !model.Contains(start) {
		return nil, fmt.Errorf("start state %q has no row in the table", start)
	}

	var meta Meta
	if doc.Metadata != nil {
		if err := mapstructure.Decode(doc.Metadata, &meta); err != nil {
			return nil, fmt.Errorf("invalid metadata block: %w", err)
		}
	}

	return &Definition{
		Name:        doc.Name,
		Description: doc.Description,
		Start:       start,
		Meta:        meta,
		Model:       model,
	}, nil
}
