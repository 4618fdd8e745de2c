package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/astinowak-wq/LinkZero-sub000/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "linkzero",
	Short: "LinkZero hardens mail submission on this host",
	Long: `LinkZero disables legacy plaintext SMTP submission, enables the
submission ports, and adjusts firewall rules. Every mutating step asks for
confirmation, and --dry-run previews the whole run without touching the
system.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, cli.ErrCancelled) {
			os.Exit(130)
		}
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("dry-run", false, "Record accepted actions without executing them")
	rootCmd.PersistentFlags().String("plan", "", "Path to a YAML plan with extra actions")
	rootCmd.PersistentFlags().IntSlice("ports", nil, "Submission ports to allow in the firewall")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
