package reactive

// A Cell carries a value and notifies watchers when the value is set.
//
// Cells have no internal locking. A Cell must only be accessed from turns
// of a single [Scheduler].
type Cell[T any] struct {
	value    T
	watchers map[int]func()
	nextID   int
}

// NewCell creates a new [Cell] with its initial value set to v.
func NewCell[T any](v T) *Cell[T] {
	return &Cell[T]{value: v}
}

// Get retrieves the value of c.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set updates the value of c and notifies every watcher.
func (c *Cell[T]) Set(v T) {
	c.value = v
	c.notify()
}

// Update sets the value of c to f(c.Get()) and notifies every watcher.
func (c *Cell[T]) Update(f func(v T) T) {
	c.Set(f(c.value))
}

// Watch registers fn to run whenever the value is set. It returns a cancel
// function that removes the registration.
func (c *Cell[T]) Watch(fn func()) (cancel func()) {
	if c.watchers == nil {
		c.watchers = make(map[int]func())
	}
	id := c.nextID
	c.nextID++
	c.watchers[id] = fn
	return func() {
		delete(c.watchers, id)
	}
}

func (c *Cell[T]) notify() {
	for _, fn := range c.watchers {
		fn()
	}
}
