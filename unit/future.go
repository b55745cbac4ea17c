package unit

// A Future is an asynchronous render-function producer. Done is closed when
// the result is available; Render must only be called after that.
type Future interface {
	Done() <-chan struct{}
	Render() (Render, error)
}

// A Boundary is an ambient suspending coordination point. Instead of
// producing synchronous output, a definition under an active boundary may
// hand it a Future; the boundary shows its own fallback until the future
// settles and applies its own error policy.
//
// Accept returns the render function the definition should expose in place
// of its own: it yields nothing until the boundary has resolved the future.
type Boundary interface {
	Accept(f Future) Render
}
