// Package config resolves the run configuration: built-in defaults,
// overridden by LINKZERO_* environment variables, overridden by flags.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DefaultLogFile is where real-mode runs append their audit log lines.
const DefaultLogFile = "/var/log/linkzero.log"

// Config is the effective configuration of one run.
type Config struct {
	// DryRun records accepted actions without executing them. The whole
	// run is side-effect free when set.
	DryRun bool `env:"LINKZERO_DRY_RUN"`

	// LogFile is the persistent log path; ignored in dry-run mode.
	LogFile string `env:"LINKZERO_LOG_FILE"`

	// PlanPath points to an optional YAML plan with extra actions.
	PlanPath string `env:"LINKZERO_PLAN"`

	// SubmissionPorts are opened in the firewall for mail submission.
	SubmissionPorts []int `env:"LINKZERO_PORTS" envSeparator:","`

	// Debug enables DEBUG-level console logging.
	Debug bool `env:"LINKZERO_DEBUG"`
}

// FromEnv builds a Config from defaults plus environment overrides.
// Flag-level overrides are applied afterwards by the command layer.
func FromEnv() (Config, error) {
	cfg := Config{
		LogFile:         DefaultLogFile,
		SubmissionPorts: []int{587, 465},
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations that cannot produce a coherent run.
func (c Config) Validate() error {
	if !c.DryRun && c.LogFile == "" {
		return fmt.Errorf("log file path must not be empty in real mode")
	}
	for _, p := range c.SubmissionPorts {
		if p <= 0 || p > 65535 {
			return fmt.Errorf("invalid submission port %d", p)
		}
	}
	return nil
}
