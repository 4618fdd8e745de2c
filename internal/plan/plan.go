// Package plan loads optional YAML plan files with operator-defined
// actions that run through the same confirmation pipeline as the
// built-in hardening steps.
package plan

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/astinowak-wq/LinkZero-sub000/internal/pipeline"
	"github.com/astinowak-wq/LinkZero-sub000/internal/sysexec"
)

// ActionSpec is one plan entry. Command names a registered allow-list
// command; Args are appended to its argv. With carries free-form
// overrides decoded into Overrides.
type ActionSpec struct {
	Description string         `yaml:"description"`
	Command     string         `yaml:"command"`
	Args        []string       `yaml:"args"`
	With        map[string]any `yaml:"with"`
}

// Overrides are the typed execution overrides a plan entry may set.
type Overrides struct {
	Env map[string]string `mapstructure:"env"`
	Dir string            `mapstructure:"dir"`
}

// Plan is the parsed plan file.
type Plan struct {
	Actions []ActionSpec `yaml:"actions"`
}

// Load reads and parses a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}

	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse plan %s: %w", path, err)
	}

	for i, a := range p.Actions {
		if a.Description == "" {
			return nil, fmt.Errorf("plan action %d: missing description", i+1)
		}
		if a.Command == "" {
			return nil, fmt.Errorf("plan action %d (%s): missing command", i+1, a.Description)
		}
	}
	return &p, nil
}

// Build resolves every plan entry against the allow-list registry into
// pipeline actions, in file order.
func (p *Plan) Build(reg *sysexec.Registry) ([]pipeline.Action, error) {
	actions := make([]pipeline.Action, 0, len(p.Actions))
	for _, spec := range p.Actions {
		cmd, err := reg.Resolve(spec.Command, spec.Args...)
		if err != nil {
			return nil, fmt.Errorf("plan action %q: %w", spec.Description, err)
		}

		if len(spec.With) > 0 {
			var ov Overrides
			if err := mapstructure.Decode(spec.With, &ov); err != nil {
				return nil, fmt.Errorf("plan action %q: decode 'with': %w", spec.Description, err)
			}
			if len(ov.Env) > 0 {
				cmd = cmd.WithEnv(ov.Env)
			}
			if ov.Dir != "" {
				cmd = cmd.WithDir(ov.Dir)
			}
		}

		actions = append(actions, pipeline.Action{
			Description: spec.Description,
			Command:     cmd,
		})
	}
	return actions, nil
}
