package suspense

import (
	stderrors "errors"
	"sync"
	"testing"
	"time"

	"github.com/wippyai/view-runtime/unit"
)

type manualFuture struct {
	done   chan struct{}
	render unit.Render
	err    error
}

func newManualFuture() *manualFuture {
	return &manualFuture{done: make(chan struct{})}
}

func (f *manualFuture) settle(render unit.Render, err error) {
	f.render, f.err = render, err
	close(f.done)
}

func (f *manualFuture) Done() <-chan struct{}        { return f.done }
func (f *manualFuture) Render() (unit.Render, error) { return f.render, f.err }

var contentDef = unit.Text("content", "the content")

func mountSuspense(t *testing.T, opts Options) *unit.Instance {
	t.Helper()
	def, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	inst, err := unit.Mount(def, unit.MountOptions{})
	if err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	t.Cleanup(inst.Close)
	return inst
}

// accept registers f with the instance's provided boundary from inside a
// scheduler turn, the way a descendant setup would.
func accept(inst *unit.Instance, f unit.Future) unit.Render {
	var render unit.Render
	done := make(chan struct{})
	inst.Scheduler().Do(func() {
		defer close(done)
		render = inst.ProvidedBoundary().Accept(f)
	})
	<-done
	return render
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Error("expected error for missing content")
	}
	def, err := New(Options{Content: contentDef})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if def.Name() != "suspense" {
		t.Errorf("default name = %q", def.Name())
	}
}

func TestSuspense_ContentWhenIdle(t *testing.T) {
	inst := mountSuspense(t, Options{Content: contentDef})

	out := inst.Output()
	if out == nil || len(out.Children) != 1 {
		t.Fatalf("Output = %v, want a group with the content node", out)
	}
	child := out.Children[0]
	if child.Def != contentDef || child.Hidden {
		t.Error("idle boundary should show the content directly")
	}
}

func TestSuspense_FallbackWhilePending(t *testing.T) {
	fallback := unit.Text("fallback", "hold on")
	inst := mountSuspense(t, Options{Content: contentDef, Fallback: fallback})

	fut := newManualFuture()
	childRender := accept(inst, fut)

	out := inst.Output()
	if len(out.Children) != 2 {
		t.Fatalf("pending boundary rendered %d nodes, want content+fallback", len(out.Children))
	}
	if !out.Children[0].Hidden {
		t.Error("pending content must stay mounted but hidden")
	}
	if out.Children[1].Def != fallback {
		t.Error("fallback not rendered while pending")
	}
	if childRender() != nil {
		t.Error("accepted render must yield nothing before the future settles")
	}

	fut.settle(func() *unit.Node { return unit.TextNode("loaded") }, nil)
	waitFor(t, "content after settle", func() bool {
		out := inst.Output()
		return len(out.Children) == 1 && !out.Children[0].Hidden
	})

	node := childRender()
	if node == nil || node.Text != "loaded" {
		t.Errorf("accepted render = %v, want the resolved output", node)
	}
}

func TestSuspense_NoFallback(t *testing.T) {
	inst := mountSuspense(t, Options{Content: contentDef})

	accept(inst, newManualFuture())

	out := inst.Output()
	if len(out.Children) != 1 || !out.Children[0].Hidden {
		t.Error("pending boundary without fallback should render only hidden content")
	}
}

func TestSuspense_FirstErrorWins(t *testing.T) {
	inst := mountSuspense(t, Options{Content: contentDef})

	futA := newManualFuture()
	futB := newManualFuture()
	accept(inst, futA)
	accept(inst, futB)

	futA.settle(nil, stderrors.New("first failure"))
	waitFor(t, "error line", func() bool {
		out := inst.Output()
		return len(out.Children) == 2 && out.Children[1].Text == "suspense: first failure"
	})

	futB.settle(nil, stderrors.New("second failure"))
	waitFor(t, "pending drained", func() bool {
		out := inst.Output()
		return len(out.Children) == 2
	})
	if out := inst.Output(); out.Children[1].Text != "suspense: first failure" {
		t.Errorf("error line = %q, want the first failure kept", out.Children[1].Text)
	}
}

func TestSuspense_LateSettleAfterClose(t *testing.T) {
	def, err := New(Options{Content: contentDef})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var mu sync.Mutex
	invalidations := 0
	inst, err := unit.Mount(def, unit.MountOptions{
		OnInvalidate: func() {
			mu.Lock()
			invalidations++
			mu.Unlock()
		},
	})
	if err != nil {
		t.Fatalf("Mount failed: %v", err)
	}

	fut := newManualFuture()
	accept(inst, fut)
	inst.Close()

	mu.Lock()
	invalidations = 0
	mu.Unlock()

	fut.settle(func() *unit.Node { return unit.TextNode("late") }, nil)
	time.Sleep(30 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if invalidations != 0 {
		t.Errorf("%d invalidations after close, want 0", invalidations)
	}
}
