package main

import (
	"github.com/spf13/cobra"

	linkzero "github.com/astinowak-wq/LinkZero-sub000"
	"github.com/astinowak-wq/LinkZero-sub000/internal/cli"
	"github.com/astinowak-wq/LinkZero-sub000/internal/config"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Apply the hardening steps with per-action confirmation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		// Errors are already self-descriptive; suppress cobra's usage dump.
		cmd.SilenceUsage = true
		return cli.Run(cfg, linkzero.Version)
	},
}

// resolveConfig layers flag overrides on top of env overrides on top of
// defaults.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}

	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile, _ = cmd.Flags().GetString("log-file")
	}
	if cmd.Flags().Changed("plan") {
		cfg.PlanPath, _ = cmd.Flags().GetString("plan")
	}
	if cmd.Flags().Changed("ports") {
		cfg.SubmissionPorts, _ = cmd.Flags().GetIntSlice("ports")
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug, _ = cmd.Flags().GetBool("debug")
	}
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("log-file", config.DefaultLogFile, "Audit log path (real mode only)")

	// Make 'run' the default if no command is provided.
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
