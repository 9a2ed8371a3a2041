package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/pitchflow/pkg/domain"
)

// StatusBarModel displays the traversal position in a single line.
type StatusBarModel struct {
	step      domain.Step
	depth     int
	canGoBack bool
	missing   bool
	width     int
}

// Update copies the navigation facts the bar shows.
func (m *StatusBarModel) Update(step domain.Step, depth int, canGoBack, missing bool) {
	m.step = step
	m.depth = depth
	m.canGoBack = canGoBack
	m.missing = missing
}

// SetWidth sets the bar width for rendering.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// View renders the status bar as a single styled line.
func (m StatusBarModel) View() string {
	parts := []string{
		fmt.Sprintf("%s: %s", m.step.Kind, m.step.ID),
		fmt.Sprintf("depth %d", m.depth),
	}
	if m.missing {
		parts = append(parts, "data unavailable")
	}

	keys := "↑↓ enter"
	if m.canGoBack {
		keys += " · b back"
	}
	keys += " · r restart · q quit"
	parts = append(parts, keys)

	style := StatusBarStyle.Width(m.width)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, style.Render(strings.Join(parts, " | ")))
}
