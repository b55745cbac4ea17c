package suspense

import (
	"github.com/wippyai/view-runtime/errors"
	"github.com/wippyai/view-runtime/reactive"
	"github.com/wippyai/view-runtime/unit"
)

// Options configure a suspending boundary.
type Options struct {
	// Content is the wrapped definition; lazy units anywhere beneath it
	// delegate their loads to this boundary. Required.
	Content unit.Definition

	// Fallback is rendered while any accepted future is unsettled.
	// Optional; without it the boundary renders nothing while pending.
	Fallback unit.Definition

	// Name identifies the boundary in errors and logs. Defaults to
	// "suspense".
	Name string
}

// A Definition is a renderable suspending boundary.
type Definition struct {
	opts Options
	name string
}

// New validates opts and builds a boundary definition.
func New(opts Options) (*Definition, error) {
	if opts.Content == nil {
		return nil, errors.InvalidInput(errors.PhaseConfig, "suspense boundary requires content")
	}
	name := opts.Name
	if name == "" {
		name = "suspense"
	}
	return &Definition{opts: opts, name: name}, nil
}

func (d *Definition) Name() string { return d.name }

// Setup implements unit.Definition. It provides the boundary to
// descendant mounts and switches between fallback and content as futures
// settle.
func (d *Definition) Setup(ctx *unit.Context) (unit.Render, error) {
	b := &boundary{
		ctx:     ctx,
		pending: reactive.NewCell(0),
		failure: reactive.NewCell[error](nil),
	}
	b.pending.Watch(ctx.Invalidate)
	b.failure.Watch(ctx.Invalidate)
	ctx.ProvideBoundary(b)

	return func() *unit.Node {
		content := unit.NewNode(d.opts.Content, ctx.Props(), ctx.Children())

		if err := b.failure.Get(); err != nil {
			content.Hidden = true
			return unit.Group(content, unit.TextNode("suspense: "+err.Error()))
		}
		if b.pending.Get() > 0 {
			// the content stays mounted so its loads keep running
			content.Hidden = true
			if d.opts.Fallback == nil {
				return unit.Group(content)
			}
			return unit.Group(content, unit.NewNode(d.opts.Fallback, nil, nil))
		}
		return unit.Group(content)
	}, nil
}

// boundary is the unit.Boundary handed to descendants. All cell access
// runs in turns of the owning instance's scheduler: Accept is called
// during a descendant's setup turn, and future completions are funneled
// through Do.
type boundary struct {
	ctx     *unit.Context
	pending *reactive.Cell[int]
	failure *reactive.Cell[error]
}

func (b *boundary) Accept(f unit.Future) unit.Render {
	resolved := reactive.NewCell[unit.Render](nil)
	resolved.Watch(b.ctx.Invalidate)
	b.pending.Update(func(n int) int { return n + 1 })

	sched := b.ctx.Scheduler()
	go func() {
		<-f.Done()
		sched.Do(func() {
			if b.ctx.Closed() {
				return
			}
			render, err := f.Render()
			if err != nil {
				if b.failure.Get() == nil {
					b.failure.Set(err)
				}
			} else {
				resolved.Set(render)
			}
			b.pending.Update(func(n int) int { return n - 1 })
		})
	}()

	return func() *unit.Node {
		if render := resolved.Get(); render != nil {
			return render()
		}
		return nil
	}
}
