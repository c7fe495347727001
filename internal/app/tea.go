package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dshills/scm/internal/input/hostkey"
)

var (
	teaTitleStyle     = lipgloss.NewStyle().Bold(true)
	teaStatusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	teaStatusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 2)
	teaHandledStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	teaUnhandledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	teaBoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// model is the bubbletea host.
type model struct {
	app   *Application
	width int
}

// NewModel returns a bubbletea model dispatching key messages to app.
func NewModel(app *Application) tea.Model {
	return model{app: app}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		if ev, ok := hostkey.FromTea(msg); ok {
			m.app.HandleKey(ev)
		}
	}
	if m.app.QuitRequested() {
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	v := m.app.Snapshot()

	var b strings.Builder
	b.WriteString(teaTitleStyle.Render("scm") + "  " + v.LayerLine() + "\n")
	b.WriteString(teaStatusStyle.Render(v.StatsLine()) + "\n\n")

	var rows []string
	for i := len(v.History) - 1; i >= 0; i-- {
		e := v.History[i]
		style := teaUnhandledStyle
		if e.Handled {
			style = teaHandledStyle
		}
		rows = append(rows, fmt.Sprintf("%-20s %s %s", e.Shortcut, style.Render(fmt.Sprintf("%-10s", e.Outcome())), teaStatusStyle.Render(e.Layer)))
	}
	if len(rows) == 0 {
		rows = append(rows, teaStatusStyle.Render("press a key"))
	}
	box := teaBoxStyle
	if m.width > 4 {
		box = box.Width(m.width - 4)
	}
	b.WriteString(box.Render(strings.Join(rows, "\n")) + "\n")

	if v.Status != "" {
		b.WriteString(teaStatusBarStyle.Render(v.Status) + "\n")
	}
	return b.String()
}

// RunTea drives the application from a bubbletea program until Quit is
// called or ctx is done.
func (app *Application) RunTea(ctx context.Context, opts ...tea.ProgramOption) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewModel(app), opts...)

	go func() {
		select {
		case <-app.quit:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	app.startOnce.Do(func() { close(app.started) })
	app.logger.Info("bubbletea host started")
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
