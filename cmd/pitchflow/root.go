package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pitchflow",
	Short: "Pitchflow walks a decision tree of pitch strategies",
	Long: `Pitchflow loads a decision tree (YAML, JSON or a directory of Markdown documents)
and lets you navigate it one choice at a time, with back and restart at every step.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("tree", "", "Decision tree file or Markdown directory")
}
