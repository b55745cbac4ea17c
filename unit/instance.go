package unit

import (
	"github.com/wippyai/view-runtime/errors"
	"github.com/wippyai/view-runtime/reactive"
)

// MountOptions configure a single mount of a Definition.
type MountOptions struct {
	Props    *Props
	Children []*Node

	// Scheduler serializes all state mutation for this instance. Instances
	// that share a tree must share a Scheduler. A new one is created when
	// nil.
	Scheduler *reactive.Scheduler

	// Boundary is the ambient suspending boundary, if any.
	Boundary Boundary

	// Reporter receives errors no view handles. Defaults to a reporter
	// that logs through the package logger.
	Reporter Reporter

	// OnInvalidate is called whenever the instance's output may have
	// changed. It may be called from any goroutine draining the Scheduler
	// and must not block.
	OnInvalidate func()
}

// An Instance is one live occurrence of a Definition. Instances are not
// shared: every mount creates a fresh one with its own state.
type Instance struct {
	def          Definition
	sched        *reactive.Scheduler
	boundary     Boundary
	reporter     Reporter
	onInvalidate func()
	props        *Props
	children     []*Node
	render       Render
	teardowns    []func()
	provided     Boundary
	closed       bool
}

// Mount runs def's Setup and returns the live instance. Setup executes as a
// scheduler turn, so cells it creates are immediately safe against turns
// spawned during setup.
func Mount(def Definition, opts MountOptions) (*Instance, error) {
	if def == nil {
		return nil, errors.InvalidInput(errors.PhaseSetup, "nil definition")
	}

	sched := opts.Scheduler
	if sched == nil {
		sched = reactive.NewScheduler()
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = NewLogReporter(Logger())
	}

	inst := &Instance{
		def:          def,
		sched:        sched,
		boundary:     opts.Boundary,
		reporter:     reporter,
		onInvalidate: opts.OnInvalidate,
		props:        opts.Props,
		children:     opts.Children,
	}

	var (
		render Render
		err    error
		done   = make(chan struct{})
	)
	sched.Do(func() {
		defer close(done)
		render, err = def.Setup(&Context{inst: inst})
	})
	<-done

	if err != nil {
		return nil, errors.Instantiation(def.Name(), err)
	}
	inst.render = render
	debugf("mounted unit %s", def.Name())
	return inst, nil
}

// Definition returns the definition this instance was mounted from.
func (in *Instance) Definition() Definition { return in.def }

// Scheduler returns the scheduler serializing this instance's state.
func (in *Instance) Scheduler() *reactive.Scheduler { return in.sched }

// ProvidedBoundary returns the boundary ambient for this instance's
// descendants: the one the instance provides itself, or the inherited one.
func (in *Instance) ProvidedBoundary() Boundary {
	if in.provided != nil {
		return in.provided
	}
	return in.boundary
}

// Output evaluates the render function and returns the current node tree.
// It returns nil when the instance renders nothing or has been closed.
// The evaluation runs as a scheduler turn.
func (in *Instance) Output() *Node {
	var node *Node
	done := make(chan struct{})
	in.sched.Do(func() {
		defer close(done)
		if in.closed || in.render == nil {
			return
		}
		node = in.render()
	})
	<-done
	return node
}

// Close tears the instance down. Teardown callbacks run in a scheduler
// turn; turns arriving afterwards observe Closed and become no-ops.
// Close is idempotent.
func (in *Instance) Close() {
	done := make(chan struct{})
	in.sched.Do(func() {
		defer close(done)
		if in.closed {
			return
		}
		in.closed = true
		for _, f := range in.teardowns {
			f()
		}
		in.teardowns = nil
		debugf("closed unit %s", in.def.Name())
	})
	<-done
}

func (in *Instance) invalidate() {
	if in.closed {
		return
	}
	if in.onInvalidate != nil {
		in.onInvalidate()
	}
}

// A Context is handed to Definition.Setup. It is only valid for the
// instance it was created for.
type Context struct {
	inst *Instance
}

// Props returns the mount properties; nil when none were supplied.
func (c *Context) Props() *Props { return c.inst.props }

// Children returns the mount children; nil when none were supplied.
func (c *Context) Children() []*Node { return c.inst.children }

// Scheduler returns the instance's scheduler. Setup code that mutates
// cells from timers or goroutines must funnel the writes through it.
func (c *Context) Scheduler() *reactive.Scheduler { return c.inst.sched }

// Boundary returns the ambient suspending boundary, or nil.
func (c *Context) Boundary() Boundary { return c.inst.boundary }

// Reporter returns the error sink for this instance.
func (c *Context) Reporter() Reporter { return c.inst.reporter }

// Instance returns the instance under setup.
func (c *Context) Instance() *Instance { return c.inst }

// Invalidate signals the host that the instance's output may have changed.
// Call it from scheduler turns, typically as a cell watcher.
func (c *Context) Invalidate() { c.inst.invalidate() }

// Closed reports whether the instance has been torn down. State-mutating
// turns check it before writing.
func (c *Context) Closed() bool { return c.inst.closed }

// ProvideBoundary makes b the ambient boundary for definitions mounted
// beneath this instance.
func (c *Context) ProvideBoundary(b Boundary) { c.inst.provided = b }

// OnTeardown registers f to run when the instance closes.
func (c *Context) OnTeardown(f func()) {
	c.inst.teardowns = append(c.inst.teardowns, f)
}
