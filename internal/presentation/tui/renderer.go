package tui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// Glamour style names accepted by NewRenderer.
const (
	StyleAuto  = "auto"
	StyleDark  = styles.DarkStyle
	StyleLight = styles.LightStyle
	StyleNoTTY = styles.NoTTYStyle
)

// RendererOption configures the glamour renderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	style    string
	wordWrap int
}

// WithStyle selects a glamour style (auto, dark, light, notty).
func WithStyle(style string) RendererOption {
	return func(c *rendererConfig) {
		if style != "" {
			c.style = style
		}
	}
}

// WithWordWrap sets the wrap column. Zero keeps glamour's default.
func WithWordWrap(width int) RendererOption {
	return func(c *rendererConfig) {
		c.wordWrap = width
	}
}

// NewRenderer returns a function that renders markdown to ANSI using glamour.
func NewRenderer(opts ...RendererOption) (func(string) (string, error), error) {
	cfg := rendererConfig{style: StyleAuto}
	for _, opt := range opts {
		opt(&cfg)
	}

	var glamourOpts []glamour.TermRendererOption
	switch cfg.style {
	case StyleAuto:
		glamourOpts = append(glamourOpts, glamour.WithAutoStyle())
	case StyleDark, StyleLight, StyleNoTTY:
		glamourOpts = append(glamourOpts, glamour.WithStandardStyle(cfg.style))
	default:
		return nil, fmt.Errorf("unknown style %q (want auto, dark, light or notty)", cfg.style)
	}
	if cfg.wordWrap > 0 {
		glamourOpts = append(glamourOpts, glamour.WithWordWrap(cfg.wordWrap))
	}

	r, err := glamour.NewTermRenderer(glamourOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}
