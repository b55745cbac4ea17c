package lazy

import (
	"context"
	"time"

	"github.com/wippyai/view-runtime/errors"
	"github.com/wippyai/view-runtime/reactive"
	"github.com/wippyai/view-runtime/unit"
)

// DefaultDelay is the anti-flicker delay applied when Options.Delay is
// left zero: the Loading view is suppressed for loads faster than this.
const DefaultDelay = 200 * time.Millisecond

// NoDelay disables the anti-flicker delay, showing the Loading view
// immediately.
const NoDelay = time.Duration(-1)

// SuspenseEnabled gates delegation to ambient boundaries. When false,
// every lazy definition runs its own state machine even under a boundary.
var SuspenseEnabled = true

// Options configure a lazy definition. Only Loader is required. Options
// are copied at construction; a Definition never mutates them.
type Options struct {
	// Loader asynchronously produces the real definition. It is invoked
	// at most once per definition until it fails, and never canceled.
	Loader func(context.Context) (unit.Definition, error)

	// Loading is rendered while the load is in flight, once Delay has
	// elapsed. Optional.
	Loading unit.Definition

	// Error is rendered when the load fails or times out, receiving the
	// failure under the "error" prop. Without it, failures go to the
	// instance's Reporter instead.
	Error unit.Definition

	// Delay is the minimum in-flight time before Loading may be shown.
	// Zero means DefaultDelay; use NoDelay to show Loading immediately.
	Delay time.Duration

	// Timeout fails the load if the loader has not settled in time. The
	// loader keeps running and may still resolve later. Zero means no
	// timeout.
	Timeout time.Duration

	// NoSuspense opts this definition out of ambient boundaries: it
	// always runs its own state machine.
	NoSuspense bool

	// Name identifies the definition in errors and logs. Defaults to
	// "lazy".
	Name string
}

// A Definition is a synchronous, renderable wrapper around an
// asynchronous unit factory. It implements unit.Definition and is
// immutable after New; all mutable state lives in the per-definition
// cache and the per-mount instance.
type Definition struct {
	opts  Options
	name  string
	delay time.Duration
	cache *cache
}

// New validates opts and builds a lazy definition.
func New(opts Options) (*Definition, error) {
	if opts.Loader == nil {
		return nil, errors.InvalidInput(errors.PhaseConfig, "lazy definition requires a loader")
	}
	if opts.Timeout < 0 {
		return nil, errors.InvalidInput(errors.PhaseConfig, "timeout must not be negative")
	}
	if opts.Delay < NoDelay {
		return nil, errors.InvalidInput(errors.PhaseConfig, "delay must be NoDelay, zero or positive")
	}

	name := opts.Name
	if name == "" {
		name = "lazy"
	}
	delay := opts.Delay
	switch delay {
	case 0:
		delay = DefaultDelay
	case NoDelay:
		delay = 0
	}

	return &Definition{
		opts:  opts,
		name:  name,
		delay: delay,
		cache: newCache(name, opts.Loader),
	}, nil
}

func (d *Definition) Name() string { return d.name }

// Setup implements unit.Definition.
//
// Under an active boundary (see SuspenseEnabled and Options.NoSuspense)
// the load is delegated: the boundary receives a future of the render
// function and owns fallback and error policy from there. Otherwise the
// instance runs the self-controlled state machine.
func (d *Definition) Setup(ctx *unit.Context) (unit.Render, error) {
	if b := ctx.Boundary(); b != nil && SuspenseEnabled && !d.opts.NoSuspense {
		return b.Accept(&renderFuture{
			name:     d.name,
			call:     d.cache.load(),
			props:    ctx.Props(),
			children: ctx.Children(),
		}), nil
	}

	// fast path: a previous mount already resolved the definition
	if res := d.cache.resolvedDef(); res != nil {
		return func() *unit.Node {
			return unit.NewNode(res, ctx.Props(), ctx.Children())
		}, nil
	}

	loaded := reactive.NewCell(false)
	loadErr := reactive.NewCell[error](nil)
	delayed := reactive.NewCell(d.delay > 0)
	loaded.Watch(ctx.Invalidate)
	loadErr.Watch(ctx.Invalidate)
	delayed.Watch(ctx.Invalidate)

	// route a failure to the error view when one is configured, or hand
	// it to the reporter as unrecoverable for this instance
	fail := func(err error) {
		if d.opts.Error != nil {
			loadErr.Set(err)
			return
		}
		ctx.Reporter().Report(err, ctx.Instance(), unit.CategoryAsyncLoader)
	}

	sched := ctx.Scheduler()

	if d.delay > 0 {
		timer := time.AfterFunc(d.delay, func() {
			sched.Do(func() {
				if ctx.Closed() {
					return
				}
				delayed.Set(false)
			})
		})
		ctx.OnTeardown(func() { timer.Stop() })
	}

	if d.opts.Timeout > 0 {
		timer := time.AfterFunc(d.opts.Timeout, func() {
			sched.Do(func() {
				if ctx.Closed() || loaded.Get() {
					return
				}
				fail(errors.Timeout(d.name, d.opts.Timeout))
			})
		})
		ctx.OnTeardown(func() { timer.Stop() })
	}

	cl := d.cache.load()
	go func() {
		<-cl.done
		sched.Do(func() {
			if ctx.Closed() {
				return
			}
			if cl.err != nil {
				// clear the shared handle so the next mount can retry
				d.cache.forget(cl)
				fail(errors.LoadFailed(d.name, cl.err))
				return
			}
			// a late success after a timeout still lands; render
			// selection puts the resolved unit above the error view
			loaded.Set(true)
		})
	}()

	return func() *unit.Node {
		if loaded.Get() {
			if res := d.cache.resolvedDef(); res != nil {
				return unit.NewNode(res, ctx.Props(), ctx.Children())
			}
		}
		if err := loadErr.Get(); err != nil && d.opts.Error != nil {
			props := unit.NewProps().Set(unit.PropError, err)
			return unit.NewNode(d.opts.Error, props, nil)
		}
		if d.opts.Loading != nil && !delayed.Get() {
			return unit.NewNode(d.opts.Loading, nil, nil)
		}
		return nil
	}, nil
}
