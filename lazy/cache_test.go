package lazy

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wippyai/view-runtime/unit"
)

func TestCache_LoadDeduplicates(t *testing.T) {
	g := newGate(realDef, nil)
	c := newCache("test", g.loader)

	a := c.load()
	b := c.load()
	if a != b {
		t.Error("concurrent loads received different calls")
	}

	close(g.release)
	<-a.Done()
	if a.err != nil || a.def != realDef {
		t.Fatalf("call settled with def=%v err=%v", a.def, a.err)
	}
	if n := g.calls.Load(); n != 1 {
		t.Errorf("loader called %d times, want 1", n)
	}
}

func TestCache_ResolvedShortCircuits(t *testing.T) {
	g := newGate(realDef, nil)
	c := newCache("test", g.loader)

	first := c.load()
	close(g.release)
	<-first.Done()

	second := c.load()
	select {
	case <-second.Done():
	default:
		t.Fatal("load after resolution should return a settled call")
	}
	if second.def != realDef {
		t.Errorf("settled call def = %v", second.def)
	}
	if n := g.calls.Load(); n != 1 {
		t.Errorf("loader called %d times, want 1", n)
	}
}

func TestCache_FailedCallStaysUntilForget(t *testing.T) {
	boom := stderrors.New("boom")
	var calls atomic.Int32
	c := newCache("test", func(context.Context) (unit.Definition, error) {
		calls.Add(1)
		return nil, boom
	})

	first := c.load()
	<-first.Done()
	if !stderrors.Is(first.err, boom) {
		t.Fatalf("err = %v", first.err)
	}

	// without forget, later loads share the same failed call
	if c.load() != first {
		t.Error("failed call was not shared")
	}
	if c.resolvedDef() != nil {
		t.Error("resolved must never be set on failure")
	}

	c.forget(first)
	second := c.load()
	if second == first {
		t.Error("load after forget should start a fresh call")
	}
	<-second.Done()
	if n := calls.Load(); n != 2 {
		t.Errorf("loader called %d times, want 2", n)
	}
}

func TestCache_ForgetIgnoresStaleCall(t *testing.T) {
	g := newGate(realDef, nil)
	c := newCache("test", g.loader)

	current := c.load()
	stale := &call{done: make(chan struct{})}
	c.forget(stale)

	if c.load() != current {
		t.Error("forget of a stale call must not clear the pending handle")
	}
	close(g.release)
	<-current.Done()
}

func TestCache_UnwrapHappensOnce(t *testing.T) {
	inner := unit.Text("inner", "i")
	c := newCache("test", func(context.Context) (unit.Definition, error) {
		return &unit.Module{Default: inner}, nil
	})

	cl := c.load()
	select {
	case <-cl.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("load did not settle")
	}

	if cl.def != inner {
		t.Errorf("call def = %v, want the unwrapped default export", cl.def)
	}
	if c.resolvedDef() != inner {
		t.Error("cache stored the wrapper instead of the unwrapped definition")
	}
}
