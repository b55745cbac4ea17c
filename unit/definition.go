package unit

import (
	"github.com/wippyai/view-runtime/errors"
)

// A Definition is the static description of a renderable unit. The host
// instantiates it by calling Setup once per mount; the returned Render is
// re-invoked on every invalidation.
type Definition interface {
	Name() string
	Setup(ctx *Context) (Render, error)
}

// Render produces the unit's current output. A nil return renders nothing.
type Render func() *Node

type funcDef struct {
	name  string
	setup func(ctx *Context) (Render, error)
}

func (d *funcDef) Name() string { return d.name }

func (d *funcDef) Setup(ctx *Context) (Render, error) { return d.setup(ctx) }

// New creates a Definition from a setup function.
func New(name string, setup func(ctx *Context) (Render, error)) Definition {
	return &funcDef{name: name, setup: setup}
}

// Func creates a Definition with no setup-time state of its own: render is
// invoked directly on every evaluation.
func Func(name string, render func(ctx *Context) *Node) Definition {
	return New(name, func(ctx *Context) (Render, error) {
		return func() *Node { return render(ctx) }, nil
	})
}

// Text creates a Definition that always renders the given text.
func Text(name, text string) Definition {
	return Func(name, func(*Context) *Node { return TextNode(text) })
}

// Normalize converts a value into a Definition.
//
// Accepted shapes: a Definition (returned as is), a func(*Context) *Node
// (wrapped via Func), and a string (wrapped via Text).
func Normalize(v any) (Definition, error) {
	switch d := v.(type) {
	case Definition:
		return d, nil
	case func(ctx *Context) *Node:
		return Func("anonymous", d), nil
	case string:
		return Text("text", d), nil
	default:
		return nil, errors.InvalidDefinition("", v)
	}
}

// DefaultExporter marks a module-shaped value: a container exposing the
// real definition under a default-export slot.
type DefaultExporter interface {
	DefaultDefinition() Definition
}

// A Module bundles definitions, with the primary one under Default. Loaders
// may resolve to a Module; consumers unwrap it via DefaultDefinition before
// caching or mounting.
type Module struct {
	Default Definition
	Exports map[string]Definition
}

// DefaultDefinition implements [DefaultExporter].
func (m *Module) DefaultDefinition() Definition { return m.Default }

func (m *Module) Name() string {
	if m.Default != nil {
		return m.Default.Name()
	}
	return "module"
}

// Setup delegates to the default export, so an unwrapped Module still
// mounts correctly.
func (m *Module) Setup(ctx *Context) (Render, error) {
	if m.Default == nil {
		return nil, errors.NotFound(errors.PhaseSetup, "default export in module", m.Name())
	}
	return m.Default.Setup(ctx)
}

// Unwrap replaces module-shaped definitions with their default export.
// Non-module values pass through unchanged.
func Unwrap(def Definition) Definition {
	if ex, ok := def.(DefaultExporter); ok {
		if d := ex.DefaultDefinition(); d != nil {
			return d
		}
	}
	return def
}
