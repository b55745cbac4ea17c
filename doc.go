// Package viewruntime provides lazily resolved view units for terminal
// user interfaces.
//
// A unit is a named, renderable piece of a terminal view. This library
// wraps asynchronous unit factories in synchronous definitions: a lazy
// definition mounts immediately, runs its factory once in the background,
// and switches from a loading view to the resolved unit (or an error
// view) as the load settles. Results are cached per definition, so every
// later mount resolves synchronously.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	view-runtime/        Root package documentation
//	├── unit/            Definitions, instances, nodes and props
//	├── reactive/        Cells and the turn-based scheduler
//	├── lazy/            Asynchronous definitions with caching and timers
//	├── suspense/        Boundaries that collect in-flight loads
//	├── tui/             bubbletea hosting and default views
//	├── wasmunit/        Units rendered by WebAssembly guests
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Wrap an async factory and host it in a terminal program:
//
//	def, err := lazy.New(lazy.Options{
//	    Loader:  fetchArticle,
//	    Loading: tui.Loading("fetching article"),
//	    Error:   tui.ErrorView(),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	model, err := tui.NewModel(def, tui.ModelOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = tea.NewProgram(model).Run()
package viewruntime
