package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/astinowak-wq/LinkZero-sub000/internal/cli"
)

// planCmd previews the action list without prompting or mutating anything.
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview the actions a run would propose",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		cmd.SilenceUsage = true
		return cli.Plan(cfg, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
