package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/pitchflow/internal/presentation/view"
	"github.com/aretw0/pitchflow/pkg/domain"
	"github.com/aretw0/pitchflow/pkg/ports"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the Bubble Tea program state. Navigation state lives in the
// Navigator; the model only keeps the option cursor and layout.
type Model struct {
	nav    ports.Navigator
	render func(string) (string, error)

	viewport  viewport.Model
	statusBar StatusBarModel

	cursor   int
	notice   string
	width    int
	height   int
	quitting bool
}

// ModelOption configures the Model.
type ModelOption func(*Model)

// WithMarkdownRenderer sets the Markdown to ANSI renderer (see NewRenderer).
// Without it the raw Markdown is shown.
func WithMarkdownRenderer(render func(string) (string, error)) ModelOption {
	return func(m *Model) {
		m.render = render
	}
}

// NewModel creates a Model positioned on the navigator's current view.
func NewModel(nav ports.Navigator, opts ...ModelOption) Model {
	m := Model{
		nav:      nav,
		viewport: viewport.New(defaultWidth, defaultHeight),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.layout()
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	options := m.options()

	switch key := msg.String(); key {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(options)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if len(options) == 0 {
			return m, nil
		}
		m.selectOption(options[m.cursor].ID)

	case "b", "left", "backspace":
		if !m.nav.CanGoBack() {
			m.notice = "already at the first step"
			return m, nil
		}
		m.nav.GoBack()

	case "r":
		m.nav.Reset()

	case "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > len(options) {
			return m, nil
		}
		m.selectOption(options[n-1].ID)
	}

	m.cursor = 0
	m.refresh()
	return m, nil
}

func (m *Model) selectOption(id string) {
	if !m.nav.SelectOptionID(id) {
		m.notice = fmt.Sprintf("no option %q on screen", id)
	}
}

// options returns the options of the node on screen, if any.
func (m Model) options() []domain.DecisionOption {
	if nv, ok := m.nav.Resolve().(domain.NodeView); ok {
		return nv.Node.Options
	}
	return nil
}

// layout sizes the viewport to the space left by the picker and status bar.
func (m *Model) layout() {
	reserved := 1 // status bar
	if n := len(m.options()); n > 0 {
		reserved += 2 + 2*n // box border plus label/helper lines
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-reserved-1, 3)
	m.statusBar.SetWidth(m.width)
}

// refresh re-renders the body of the current view into the viewport.
func (m *Model) refresh() {
	v := m.nav.Resolve()
	_, missing := m.nav.Missing()
	m.statusBar.Update(m.nav.CurrentStep(), len(m.nav.History()), m.nav.CanGoBack(), missing)

	var sb strings.Builder
	if header := view.Header(m.nav.Tree()); header != "" {
		sb.WriteString(header)
		sb.WriteString("\n")
	}
	if nv, ok := v.(domain.NodeView); ok {
		sb.WriteString(view.NodeHeading(nv.Node))
	} else {
		sb.WriteString(view.Body(v))
	}

	content := sb.String()
	if m.render != nil {
		if rendered, err := m.render(content); err == nil {
			content = rendered
		}
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
	m.layout()
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.viewport.View()}
	if picker := m.pickerView(); picker != "" {
		sections = append(sections, picker)
	}
	if m.notice != "" {
		sections = append(sections, NoticeStyle.Render(m.notice))
	}
	sections = append(sections, m.statusBar.View())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) pickerView() string {
	options := m.options()
	if len(options) == 0 {
		return ""
	}

	var lines []string
	for i, opt := range options {
		prefix := "  "
		style := OptionStyle
		if i == m.cursor {
			prefix = CursorStyle.Render("› ")
			style = SelectedOptionStyle
		}
		lines = append(lines, prefix+style.Render(fmt.Sprintf("%d. %s", i+1, opt.Label)))
		if opt.Helper != "" {
			lines = append(lines, HelperStyle.Render(opt.Helper))
		}
	}
	return OptionsBoxStyle.Render(strings.Join(lines, "\n"))
}

// Cursor returns the highlighted option index.
func (m Model) Cursor() int {
	return m.cursor
}

// Notice returns the last feedback message, if any.
func (m Model) Notice() string {
	return m.notice
}

// Run starts the full-screen program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, nav ports.Navigator, opts ...ModelOption) error {
	p := tea.NewProgram(NewModel(nav, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return ctx.Err()
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
