// Package manifest loads declarative YAML lists of environment variables and
// initializes them through a pkg/envvar Resolver. It lets a deployment describe its
// whole variable surface in one file instead of a hand-written sequence of
// InitVariable calls.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/platinummonkey/envinit/pkg/envvar"
)

// Variable describes one environment variable to initialize.
type Variable struct {
	// Name is the variable name; its _FILE indirection is derived automatically.
	Name string `yaml:"name"`
	// Default is the fallback value. A missing key and an explicit empty string
	// are different: the empty string is a real default.
	Default *string `yaml:"default,omitempty"`
	// Rule names the validation preset: required, optional, required-non-empty,
	// or optional-non-empty. Empty means required.
	Rule string `yaml:"rule,omitempty"`
}

// Manifest is a declarative set of variables to initialize at startup.
type Manifest struct {
	Variables []Variable `yaml:"variables"`
}

// rules maps manifest rule names to validator presets.
var rules = map[string]envvar.Rule{
	"":                   envvar.Required,
	"required":           envvar.Required,
	"optional":           envvar.Optional,
	"required-non-empty": envvar.RequiredNonEmpty,
	"optional-non-empty": envvar.OptionalNonEmpty,
}

// RuleFor returns the validator preset for a manifest rule name. The empty name
// maps to the required preset.
func RuleFor(name string) (envvar.Rule, error) {
	rule, ok := rules[name]
	if !ok {
		return envvar.Rule{}, fmt.Errorf("unknown rule %q (must be required, optional, required-non-empty, or optional-non-empty)", name)
	}
	return rule, nil
}

// Parse parses and validates a YAML manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	seen := make(map[string]bool, len(m.Variables))
	for i, v := range m.Variables {
		if v.Name == "" {
			return nil, fmt.Errorf("variable %d: name is required", i)
		}
		if seen[v.Name] {
			return nil, fmt.Errorf("variable %s: listed more than once", v.Name)
		}
		seen[v.Name] = true
		if _, err := RuleFor(v.Rule); err != nil {
			return nil, fmt.Errorf("variable %s: %w", v.Name, err)
		}
	}

	return &m, nil
}

// Load loads and parses a manifest from a file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Save writes the manifest to a file as YAML.
func Save(m *Manifest, path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
