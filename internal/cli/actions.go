package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/astinowak-wq/LinkZero-sub000/internal/config"
	"github.com/astinowak-wq/LinkZero-sub000/internal/firewall"
	"github.com/astinowak-wq/LinkZero-sub000/internal/mta"
	"github.com/astinowak-wq/LinkZero-sub000/internal/pipeline"
	"github.com/astinowak-wq/LinkZero-sub000/internal/plan"
	"github.com/astinowak-wq/LinkZero-sub000/internal/sysexec"
	"github.com/astinowak-wq/LinkZero-sub000/internal/tui"
)

// DefaultPlanPath is picked up automatically when present in the working
// directory.
const DefaultPlanPath = "linkzero.yaml"

// buildActions assembles the full ordered action list: MTA hardening,
// firewall rules, then plan-file extras. The MTA is mandatory; the
// firewall backend and the plan file are not.
func buildActions(cfg config.Config, logger *slog.Logger) ([]pipeline.Action, error) {
	agent, err := mta.Detect()
	if err != nil {
		return nil, err
	}
	logger.Info("detected MTA: " + agent.String())

	actions := mta.HardeningActions(agent)

	backend := firewall.Detect()
	if backend == firewall.None {
		logger.Info("no supported firewall backend found; skipping firewall rules")
	} else {
		logger.Info("detected firewall backend: " + backend.String())
		actions = append(actions, firewall.AllowPortActions(backend, cfg.SubmissionPorts)...)
	}

	extra, err := planActions(cfg, logger)
	if err != nil {
		return nil, err
	}
	return append(actions, extra...), nil
}

// planActions loads the plan file when one is configured or present.
// An explicitly configured path must load; the default path is optional.
func planActions(cfg config.Config, logger *slog.Logger) ([]pipeline.Action, error) {
	path := cfg.PlanPath
	if path == "" {
		if _, err := os.Stat(DefaultPlanPath); err != nil {
			return nil, nil
		}
		path = DefaultPlanPath
	}

	p, err := plan.Load(path)
	if err != nil {
		return nil, err
	}

	extra, err := p.Build(commandRegistry())
	if err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		logger.Info(fmt.Sprintf("loaded %d extra action(s) from %s", len(extra), path))
	}
	return extra, nil
}

// commandRegistry is the allow-list available to plan files. Plans compose
// argv suffixes onto these vetted tools only.
func commandRegistry() *sysexec.Registry {
	reg := sysexec.NewRegistry()
	reg.Register("postconf", "postconf")
	reg.Register("systemctl", "systemctl")
	reg.Register("csf", "csf")
	reg.Register("iptables", "iptables")
	reg.Register("sed", "sed")
	return reg
}

func printBanner(version string, dryRun bool) {
	tui.PrintBanner(version, dryRun)
}
