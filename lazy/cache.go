package lazy

import (
	"context"
	"sync"

	"github.com/wippyai/view-runtime/unit"
)

// A call is one shared loader invocation. done is closed when the loader
// settles; def and err must only be read after that.
type call struct {
	done chan struct{}
	def  unit.Definition
	err  error
}

func (c *call) Done() <-chan struct{} { return c.done }

func settledCall(def unit.Definition) *call {
	c := &call{done: make(chan struct{}), def: def}
	close(c.done)
	return c
}

// cache memoizes the loader per lazy definition. It is shared by all
// instances, so every access takes the mutex; the loader itself runs on
// its own goroutine, outside the lock.
type cache struct {
	mu       sync.Mutex
	name     string
	loader   func(context.Context) (unit.Definition, error)
	pending  *call
	resolved unit.Definition
}

func newCache(name string, loader func(context.Context) (unit.Definition, error)) *cache {
	return &cache{name: name, loader: loader}
}

// resolvedDef returns the cached successful result, or nil.
func (c *cache) resolvedDef() unit.Definition {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resolved
}

// load returns the shared call, starting the loader only when there is
// neither a resolved result nor an in-flight invocation.
func (c *cache) load() *call {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resolved != nil {
		return settledCall(c.resolved)
	}
	if c.pending != nil {
		return c.pending
	}

	cl := &call{done: make(chan struct{})}
	c.pending = cl
	go c.run(cl)
	return cl
}

func (c *cache) run(cl *call) {
	// the load is shared across instances and outlives any one of them,
	// so it is never canceled by instance teardown
	def, err := c.loader(context.Background())
	if err == nil {
		def = unit.Unwrap(def)
		if def == nil && unit.Debug {
			unit.Logger().Warn("lazy loader resolved to a nil definition: " + c.name)
		}
	}

	c.mu.Lock()
	cl.def, cl.err = def, err
	if err == nil {
		c.resolved = def
	}
	// a failed call stays pending until an instance calls forget; every
	// load in between receives the same failed call
	c.mu.Unlock()

	close(cl.done)
}

// forget clears the pending handle if it still refers to cl, allowing the
// next mount to retry the loader.
func (c *cache) forget(cl *call) {
	c.mu.Lock()
	if c.pending == cl {
		c.pending = nil
	}
	c.mu.Unlock()
}
