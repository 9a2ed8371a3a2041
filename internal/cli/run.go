package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/pitchflow/internal/config"
	"github.com/aretw0/pitchflow/internal/presentation/tui"
)

// RunOptions contains all the configuration for the Run command.
type RunOptions struct {
	TreePath     string
	Mode         string
	Style        string
	Debug        bool
	Banner       bool
	MaxInputSize int

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
}

// OptionsFromConfig maps a loaded configuration onto RunOptions.
func OptionsFromConfig(cfg *config.Config) RunOptions {
	return RunOptions{
		TreePath:     cfg.Tree,
		Mode:         cfg.Mode,
		Style:        cfg.Style,
		Debug:        cfg.Debug,
		Banner:       cfg.Banner,
		MaxInputSize: cfg.MaxInputSize,
	}
}

// Execute handles the 'run' command logic, normalizing options before
// starting a session.
func Execute(opts RunOptions) error {
	opts, err := normalize(opts)
	if err != nil {
		return err
	}
	return RunSession(opts)
}

// normalize fills stream defaults and degrades terminal-only settings when
// the output is not a terminal.
func normalize(opts RunOptions) (RunOptions, error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Mode == "" {
		opts.Mode = config.ModeText
	}
	if opts.Style == "" {
		opts.Style = tui.StyleAuto
	}

	switch opts.Mode {
	case config.ModeText, config.ModeJSON, config.ModeTUI:
	default:
		return opts, fmt.Errorf("%w: unknown mode %q", config.ErrInvalidConfig, opts.Mode)
	}

	if !isTerminal(opts.Stdout) {
		if opts.Mode == config.ModeTUI {
			opts.Mode = config.ModeText
		}
		if opts.Style == tui.StyleAuto {
			opts.Style = tui.StyleNoTTY
		}
	}
	return opts, nil
}
