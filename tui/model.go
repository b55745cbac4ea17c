package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/view-runtime/unit"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// ModelOptions configure a bubbletea model hosting a unit tree.
type ModelOptions struct {
	Props    *unit.Props
	Reporter unit.Reporter

	// Title is rendered above the tree when non-empty.
	Title string
}

type refreshMsg struct{}

// A Model adapts a unit tree to the bubbletea event loop.
type Model struct {
	tree    *Tree
	refresh chan struct{}
	title   string
	width   int
	done    bool
}

// NewModel mounts def into a fresh tree wired to refresh the program
// whenever reactive state changes.
func NewModel(def unit.Definition, opts ModelOptions) (*Model, error) {
	refresh := make(chan struct{}, 1)
	tree, err := NewTree(def, TreeOptions{
		Props:    opts.Props,
		Reporter: opts.Reporter,
		OnChange: func() {
			select {
			case refresh <- struct{}{}:
			default:
			}
		},
	})
	if err != nil {
		return nil, err
	}
	return &Model{tree: tree, refresh: refresh, title: opts.Title}, nil
}

// Tree returns the hosted tree.
func (m *Model) Tree() *Tree { return m.tree }

func (m *Model) Init() tea.Cmd {
	return m.wait
}

// wait blocks until the next invalidation and turns it into a message.
func (m *Model) wait() tea.Msg {
	<-m.refresh
	return refreshMsg{}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.done = true
			m.tree.Close()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case refreshMsg:
		return m, m.wait
	}

	return m, nil
}

func (m *Model) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(titleStyle.Render(m.title))
		b.WriteString("\n\n")
	}
	b.WriteString(m.tree.Render())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("q quit"))
	return b.String()
}
