package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/pitchflow/internal/cli"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [tree]",
	Short: "Export the decision tree as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph TD) of the tree. Dangling references are drawn
as dashed nodes. With --path the given option ids are selected first and the
resulting history is highlighted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		treePath, _ := cmd.Flags().GetString("tree")
		if !cmd.Flags().Changed("tree") && len(args) > 0 {
			treePath = args[0]
		}
		replay, _ := cmd.Flags().GetStringSlice("path")

		return cli.RunGraph(cmd.Context(), treePath, replay, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringSlice("path", nil, "Option ids to replay before drawing, e.g. keep,fast")
}
