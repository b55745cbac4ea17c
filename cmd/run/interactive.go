package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/view-runtime/tui"
	"github.com/wippyai/view-runtime/unit"
	"github.com/wippyai/view-runtime/wasmunit"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	unitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// runInteractive starts a unit browser: a list of the manifest's units,
// where selecting one mounts its lazy definition in a hosted tree. When
// only is non-empty that unit is opened directly.
func runInteractive(cfg *fileConfig, rt *wasmunit.Runtime, only string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal; drop -i or redirect elsewhere")
	}

	m := &browserModel{cfg: cfg, rt: rt}
	if only != "" {
		u, err := cfg.find(only)
		if err != nil {
			return err
		}
		if err := m.open(u.Name); err != nil {
			return err
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

type browserModel struct {
	cfg      *fileConfig
	rt       *wasmunit.Runtime
	selected int
	inner    *tui.Model
	err      error
}

// open mounts the named unit in a fresh hosted tree.
func (m *browserModel) open(name string) error {
	root, err := buildRoot(m.cfg, m.rt, name)
	if err != nil {
		return err
	}
	inner, err := tui.NewModel(root, tui.ModelOptions{
		Title:    name,
		Reporter: unit.NewLogReporter(unit.Logger()),
	})
	if err != nil {
		return err
	}
	m.inner = inner
	return nil
}

func (m *browserModel) Init() tea.Cmd {
	if m.inner != nil {
		return m.inner.Init()
	}
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.inner != nil {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			m.inner.Tree().Close()
			m.inner = nil
			return m, nil
		}
		_, cmd := m.inner.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.cfg.Units)-1 {
				m.selected++
			}
		case "enter":
			m.err = m.open(m.cfg.Units[m.selected].Name)
			if m.err == nil {
				return m, m.inner.Init()
			}
		}
	}
	return m, nil
}

func (m *browserModel) View() string {
	if m.inner != nil {
		return m.inner.View() + "\n" + hintStyle.Render("esc back")
	}

	title := m.cfg.Title
	if title == "" {
		title = "view-runtime"
	}
	s := titleStyle.Render(title) + "\n\n"
	for i, u := range m.cfg.Units {
		line := unitStyle.Render(u.Name) + " " + kindStyle.Render("("+u.Kind+")")
		if i == m.selected {
			line = selectedStyle.Render("> " + u.Name + " (" + u.Kind + ")")
		} else {
			line = "  " + line
		}
		s += line + "\n"
	}
	if m.err != nil {
		s += "\n" + errStyle.Render("Error: "+m.err.Error()) + "\n"
	}
	s += "\n" + hintStyle.Render("↑/↓ select · enter open · q quit")
	return s
}
