// Package unit provides renderable unit definitions and their instances.
//
// A Definition is the static description of a renderable unit. The host
// mounts a Definition into an Instance, which runs the definition's Setup
// once and then re-invokes the returned render function whenever the
// instance is invalidated.
//
// # Quick Start
//
//	greeting := unit.Func("greeting", func(ctx *unit.Context) *unit.Node {
//	    name := "world"
//	    if s, ok := ctx.Props().GetString("name"); ok {
//	        name = s
//	    }
//	    return unit.TextNode("hello, " + name)
//	})
//
//	inst, err := unit.Mount(greeting, unit.MountOptions{
//	    Props: unit.NewProps().Set("name", "wippy"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer inst.Close()
//
//	node := inst.Output()
//
// # Nodes
//
// Render functions produce a Node tree. A Node either carries leaf Text or
// references another Definition plus the props and children to mount it
// with. NewNode is the single construction point for definition nodes.
//
// NewNode deliberately passes a nil Props through unchanged instead of
// allocating an empty one: a nil Props tells the mounted definition that no
// properties were supplied, so it may apply its own defaults.
//
// # Invalidation
//
// Mutable state lives in reactive cells owned by the instance's Scheduler.
// Setup code watches its cells and calls Context.Invalidate when they
// change; the host re-reads Output on the next frame. Render functions must
// stay side-effect free: they are re-run at arbitrary times.
//
// # Teardown
//
// Close marks the instance inert. Scheduler turns that arrive afterwards
// (timer callbacks, load completions) observe Context.Closed and drop their
// writes instead of mutating torn-down state.
//
// # Suspending boundaries
//
// A Boundary is an ambient coordination point that accepts a Future of a
// render function instead of synchronous output. Definitions discover an
// active boundary through Context.Boundary; the suspense package ships the
// implementation.
package unit
