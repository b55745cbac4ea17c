// Package lazy wraps an asynchronous unit factory in a synchronous,
// renderable definition.
//
// A lazy Definition defers producing its real content until first mount:
// the loader runs once, its result is cached on the definition and shared
// by every instance, and each instance walks a small state machine from
// loading through delayed-loading to resolved, timed-out or errored.
//
//	def, err := lazy.New(lazy.Options{
//	    Name:    "dashboard",
//	    Loader:  fetchDashboard,            // func(context.Context) (unit.Definition, error)
//	    Loading: tui.Loading("dashboard"),  // optional, shown after Delay
//	    Error:   tui.ErrorView(),           // optional, shown on failure
//	    Delay:   200 * time.Millisecond,
//	    Timeout: 5 * time.Second,
//	})
//
// # Render selection
//
// On every re-evaluation the instance picks the first match:
//
//  1. loaded and a resolved definition exists: render it, forwarding the
//     instance's props and children (nil stays nil).
//  2. an error value is set and an Error view is configured: render the
//     Error view with the failure under the "error" prop.
//  3. a Loading view is configured and the anti-flicker delay has elapsed:
//     render the Loading view.
//  4. otherwise render nothing.
//
// A load that succeeds after the timeout already fired still flips the
// instance to loaded, and rule 1 outranks rule 2: the late result replaces
// the timeout error on screen. The timeout never cancels the loader.
//
// # Caching and retry
//
// The loader cache keeps at most one in-flight invocation per definition.
// On failure the failing instance clears the shared pending handle, so the
// next mount retries the loader; nothing retries automatically. A
// successful result is kept forever.
//
// # Suspending boundaries
//
// Under an active unit.Boundary (and unless Options.NoSuspense or the
// package-level SuspenseEnabled switch says otherwise) the definition does
// not run its own state machine. It hands the boundary a future of its
// render function; fallback content, awaiting and error policy are then
// entirely the boundary's business.
package lazy
