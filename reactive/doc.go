// Package reactive provides the observable state primitives that drive
// unit re-rendering.
//
// A Cell is a value with change notification: setting it synchronously
// invokes every registered watcher. A Scheduler is a serial turn queue that
// funnels mutations from arbitrary goroutines (timers, loader completions)
// onto one logical event loop, so cell writes and their watchers never run
// concurrently.
//
// Cells are not safe for direct concurrent use. All reads and writes of a
// cell must happen inside turns of the same Scheduler:
//
//	sched := reactive.NewScheduler()
//	loaded := reactive.NewCell(false)
//	cancel := loaded.Watch(func() { /* re-render */ })
//	defer cancel()
//
//	time.AfterFunc(delay, func() {
//	    sched.Do(func() { loaded.Set(true) })
//	})
//
// Turns enqueued during a running turn are executed by the active drainer
// after the current turn completes, preserving write ordering.
package reactive
