package tui

import (
	"fmt"
	"strings"

	"github.com/wippyai/view-runtime/reactive"
	"github.com/wippyai/view-runtime/unit"
)

// TreeOptions configure a mounted unit tree.
type TreeOptions struct {
	Props    *unit.Props
	Children []*unit.Node

	// Scheduler serializes state for every instance in the tree. A new
	// one is created when nil.
	Scheduler *reactive.Scheduler

	// Reporter receives unhandled errors from any instance in the tree.
	Reporter unit.Reporter

	// OnChange is called whenever any instance invalidates. It may run
	// on any goroutine and must not block.
	OnChange func()
}

// A Tree is a root instance plus the child instances mounted for the
// definition nodes its renders produce. Children are keyed by position and
// definition name, reused while both match, and closed when they drop out
// of the output.
type Tree struct {
	sched    *reactive.Scheduler
	reporter unit.Reporter
	onChange func()
	root     *mounted
}

type mounted struct {
	inst     *unit.Instance
	children map[string]*mounted
}

// NewTree mounts def as the tree root.
func NewTree(def unit.Definition, opts TreeOptions) (*Tree, error) {
	sched := opts.Scheduler
	if sched == nil {
		sched = reactive.NewScheduler()
	}
	t := &Tree{
		sched:    sched,
		reporter: opts.Reporter,
		onChange: opts.OnChange,
	}

	inst, err := unit.Mount(def, unit.MountOptions{
		Props:        opts.Props,
		Children:     opts.Children,
		Scheduler:    sched,
		Reporter:     opts.Reporter,
		OnInvalidate: t.invalidate,
	})
	if err != nil {
		return nil, err
	}
	t.root = &mounted{inst: inst, children: make(map[string]*mounted)}
	return t, nil
}

// Scheduler returns the scheduler shared by every instance in the tree.
func (t *Tree) Scheduler() *reactive.Scheduler { return t.sched }

// Render evaluates the tree and returns its visible text. Lines from
// sibling nodes are joined with newlines; hidden subtrees are evaluated
// (keeping their instances and loads alive) but contribute nothing.
func (t *Tree) Render() string {
	return t.renderMounted(t.root)
}

// Close tears down every instance in the tree.
func (t *Tree) Close() {
	t.closeMounted(t.root)
}

func (t *Tree) invalidate() {
	if t.onChange != nil {
		t.onChange()
	}
}

func (t *Tree) closeMounted(m *mounted) {
	for _, child := range m.children {
		t.closeMounted(child)
	}
	m.children = nil
	m.inst.Close()
}

func (t *Tree) renderMounted(m *mounted) string {
	used := make(map[string]bool)
	out := t.renderNode(m, m.inst.Output(), "0", used)

	// close instances that dropped out of this frame
	for key, child := range m.children {
		if !used[key] {
			t.closeMounted(child)
			delete(m.children, key)
		}
	}
	return out
}

func (t *Tree) renderNode(owner *mounted, n *unit.Node, path string, used map[string]bool) string {
	if n == nil {
		return ""
	}

	if n.Def != nil {
		key := path + "/" + n.Def.Name()
		used[key] = true

		child, ok := owner.children[key]
		if ok && child.inst.Definition() != n.Def {
			t.closeMounted(child)
			delete(owner.children, key)
			ok = false
		}
		if !ok {
			inst, err := unit.Mount(n.Def, unit.MountOptions{
				Props:        n.Props,
				Children:     n.Children,
				Scheduler:    t.sched,
				Boundary:     owner.inst.ProvidedBoundary(),
				Reporter:     t.reporter,
				OnInvalidate: t.invalidate,
			})
			if err != nil {
				return errorStyle.Render("mount " + n.Def.Name() + ": " + err.Error())
			}
			child = &mounted{inst: inst, children: make(map[string]*mounted)}
			owner.children[key] = child
		}

		out := t.renderMounted(child)
		if n.Hidden {
			return ""
		}
		return out
	}

	var parts []string
	if n.Text != "" && !n.Hidden {
		parts = append(parts, n.Text)
	}
	for i, c := range n.Children {
		s := t.renderNode(owner, c, fmt.Sprintf("%s.%d", path, i), used)
		if n.Hidden {
			continue
		}
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}
