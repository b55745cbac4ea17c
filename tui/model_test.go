package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wippyai/view-runtime/reactive"
	"github.com/wippyai/view-runtime/unit"
)

func TestModel_View(t *testing.T) {
	m, err := NewModel(unit.Text("greeting", "hello"), ModelOptions{Title: "demo"})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	defer m.Tree().Close()

	view := m.View()
	if !strings.Contains(view, "hello") {
		t.Errorf("View() = %q, want the unit output", view)
	}
	if !strings.Contains(view, "demo") {
		t.Errorf("View() = %q, want the title", view)
	}
	if !strings.Contains(view, "q quit") {
		t.Errorf("View() = %q, want the help line", view)
	}
}

func TestModel_QuitOnKey(t *testing.T) {
	var torndown bool
	def := unit.New("root", func(ctx *unit.Context) (unit.Render, error) {
		ctx.OnTeardown(func() { torndown = true })
		return func() *unit.Node { return unit.TextNode("x") }, nil
	})

	m, err := NewModel(def, ModelOptions{})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("Update(q) returned no command")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("Update(q) command = %v, want tea.Quit", msg)
	}
	if !torndown {
		t.Error("quitting did not close the tree")
	}
	if m.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModel_RefreshOnInvalidation(t *testing.T) {
	var cell *reactive.Cell[string]
	def := unit.New("root", func(ctx *unit.Context) (unit.Render, error) {
		cell = reactive.NewCell("before")
		cell.Watch(ctx.Invalidate)
		return func() *unit.Node { return unit.TextNode(cell.Get()) }, nil
	})

	m, err := NewModel(def, ModelOptions{})
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	defer m.Tree().Close()

	cmd := m.Init()
	got := make(chan tea.Msg, 1)
	go func() { got <- cmd() }()

	m.Tree().Scheduler().Do(func() { cell.Set("after") })

	select {
	case msg := <-got:
		if _, ok := msg.(refreshMsg); !ok {
			t.Fatalf("Init command produced %T, want refreshMsg", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("invalidation never reached the bubbletea loop")
	}

	if _, next := m.Update(refreshMsg{}); next == nil {
		t.Error("Update(refreshMsg) should re-arm the wait command")
	}
	if view := m.View(); !strings.Contains(view, "after") {
		t.Errorf("View() = %q after update", view)
	}
}
