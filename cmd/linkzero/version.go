package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	linkzero "github.com/astinowak-wq/LinkZero-sub000"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of linkzero",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("linkzero version %s\n", strings.TrimSpace(linkzero.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
