// Package tui hosts unit trees inside bubbletea programs.
//
// A Tree mounts a root definition and renders its node output to styled
// text, mounting nested definitions as child instances and reusing them
// across frames. A Model adapts a Tree to the bubbletea event loop:
// invalidations raised by reactive state become refresh messages, so the
// terminal re-renders exactly when observable state changes.
//
//	model, err := tui.NewModel(root, tui.ModelOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p := tea.NewProgram(model, tea.WithAltScreen())
//	_, err = p.Run()
//
// The package also ships the default views lazy units are typically
// configured with: Loading, a spinner line, and ErrorView, which renders
// the failure passed under the "error" prop.
//
// Tree and Model are not safe for concurrent use; bubbletea drives them
// from a single goroutine, which is the intended usage.
package tui
