package lazy

import (
	"github.com/wippyai/view-runtime/errors"
	"github.com/wippyai/view-runtime/unit"
)

// renderFuture adapts a cache call into the unit.Future handed to a
// suspending boundary: once the call settles it produces the same render
// function the self-controlled path would use for a resolved unit.
//
// Failures on this path are the boundary's to handle; the shared pending
// handle is not cleared here.
type renderFuture struct {
	name     string
	call     *call
	props    *unit.Props
	children []*unit.Node
}

func (f *renderFuture) Done() <-chan struct{} { return f.call.done }

func (f *renderFuture) Render() (unit.Render, error) {
	if f.call.err != nil {
		return nil, errors.LoadFailed(f.name, f.call.err)
	}
	res := f.call.def
	if res == nil {
		return nil, errors.InvalidDefinition(f.name, nil)
	}
	return func() *unit.Node {
		return unit.NewNode(res, f.props, f.children)
	}, nil
}
