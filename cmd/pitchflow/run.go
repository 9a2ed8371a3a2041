package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/pitchflow/internal/cli"
	"github.com/aretw0/pitchflow/internal/config"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [tree]",
	Short: "Navigate the decision tree interactively",
	Long: `Starts the viewer over the given tree. Without a tree argument the configured
tree is used, then tree.yaml, tree.yml or tree.json in the working directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("tree") {
			cfg.Tree, _ = flags.GetString("tree")
		} else if len(args) > 0 {
			cfg.Tree = args[0]
		}
		if flags.Changed("mode") {
			cfg.Mode, _ = flags.GetString("mode")
		}
		if flags.Changed("style") {
			cfg.Style, _ = flags.GetString("style")
		}
		if flags.Changed("debug") {
			cfg.Debug, _ = flags.GetBool("debug")
		}
		if flags.Changed("no-banner") {
			noBanner, _ := flags.GetBool("no-banner")
			cfg.Banner = !noBanner
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		opts := cli.OptionsFromConfig(cfg)
		opts.Stdin = cmd.InOrStdin()
		opts.Stdout = cmd.OutOrStdout()
		return cli.Execute(opts)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("mode", config.ModeText, "Presentation mode: text, json or tui")
	runCmd.Flags().String("style", "auto", "Markdown style: auto, dark, light or notty")
	runCmd.Flags().Bool("debug", false, "Log engine transitions to stderr")
	runCmd.Flags().Bool("no-banner", false, "Do not print the banner")
	runCmd.Flags().String("config", "", "Configuration file (default "+config.DefaultFile+")")

	// Make 'run' the default if no command is provided
	rootCmd.Args = runCmd.Args
	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
