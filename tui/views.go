package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/wippyai/view-runtime/reactive"
	"github.com/wippyai/view-runtime/unit"
)

// Loading returns a spinner-line definition suitable as a lazy Loading
// view. The spinner advances on its own ticker until teardown.
func Loading(text string) unit.Definition {
	return LoadingSpinner(text, spinner.Dot)
}

// LoadingSpinner is Loading with an explicit spinner style.
func LoadingSpinner(text string, sp spinner.Spinner) unit.Definition {
	return unit.New("loading", func(ctx *unit.Context) (unit.Render, error) {
		frame := reactive.NewCell(0)
		frame.Watch(ctx.Invalidate)

		sched := ctx.Scheduler()
		ticker := time.NewTicker(sp.FPS)
		stop := make(chan struct{})
		go func() {
			for {
				select {
				case <-ticker.C:
					sched.Do(func() {
						if ctx.Closed() {
							return
						}
						frame.Update(func(n int) int { return n + 1 })
					})
				case <-stop:
					return
				}
			}
		}()
		ctx.OnTeardown(func() {
			ticker.Stop()
			close(stop)
		})

		return func() *unit.Node {
			glyph := sp.Frames[frame.Get()%len(sp.Frames)]
			out := spinnerStyle.Render(glyph)
			if text != "" {
				out += " " + text
			}
			return unit.TextNode(out)
		}, nil
	})
}

// ErrorView returns a definition that renders the failure passed under
// the "error" prop. It is the conventional lazy Error view.
func ErrorView() unit.Definition {
	return unit.Func("error", func(ctx *unit.Context) *unit.Node {
		if err, ok := ctx.Props().GetError(unit.PropError); ok {
			return unit.TextNode(errorStyle.Render("Error: " + err.Error()))
		}
		return unit.TextNode(errorStyle.Render("Error"))
	})
}
