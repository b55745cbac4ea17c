package reactive

import "sync"

// A Scheduler runs functions one at a time in FIFO order.
//
// Do may be called from any goroutine. If no drain is in progress the
// calling goroutine becomes the drainer and runs queued turns until the
// queue is empty; otherwise the turn is picked up by the active drainer.
// Two turns never run concurrently.
type Scheduler struct {
	mu      sync.Mutex
	queue   []func()
	running bool
	autorun func()
}

// NewScheduler creates a Scheduler that drains synchronously on the
// goroutine that triggered the drain.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Autorun sets up a function to be called whenever a drain is needed.
//
// One must pass a function that calls the Run method, directly or from
// another goroutine. By default the Scheduler calls Run itself.
func (s *Scheduler) Autorun(f func()) {
	s.mu.Lock()
	s.autorun = f
	s.mu.Unlock()
}

// Do enqueues f and ensures a drain is in progress.
func (s *Scheduler) Do(f func()) {
	s.mu.Lock()
	s.queue = append(s.queue, f)
	start := !s.running
	if start {
		s.running = true
	}
	autorun := s.autorun
	s.mu.Unlock()

	if !start {
		return
	}
	if autorun != nil {
		autorun()
		return
	}
	s.Run()
}

// Run pops and runs every queued turn until the queue is emptied.
//
// Run must not be called twice at the same time; use Do, which guarantees
// a single drainer.
func (s *Scheduler) Run() {
	for {
		s.mu.Lock()
		if len(s.queue) == 0 {
			s.running = false
			s.mu.Unlock()
			return
		}
		f := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		f()
	}
}
