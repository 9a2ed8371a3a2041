package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/pitchflow"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pitchflow",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pitchflow version %s\n", strings.TrimSpace(pitchflow.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
