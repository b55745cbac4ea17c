// Package suspense implements the ambient suspending boundary.
//
// A suspense definition wraps content that may contain lazy units. While
// any accepted future is unsettled, the boundary shows its fallback and
// keeps the pending content mounted but hidden, so the loads it triggered
// stay alive. Once every future settles the content is shown directly.
//
//	def, err := suspense.New(suspense.Options{
//	    Content:  dashboard, // may contain lazy definitions
//	    Fallback: tui.Loading("dashboard"),
//	})
//
// Lazy definitions mounted beneath the boundary delegate their loads to it
// instead of running their own loading/timeout machinery; see the lazy
// package. Error policy is the boundary's own: the first failed future is
// rendered as an error line in place of the content.
package suspense
