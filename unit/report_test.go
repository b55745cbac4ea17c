package unit

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogReporter(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := NewLogReporter(zap.New(core))

	inst, err := Mount(Text("widget", "w"), MountOptions{})
	if err != nil {
		t.Fatalf("Mount failed: %v", err)
	}
	defer inst.Close()

	r.Report(errTest, inst, CategoryAsyncLoader)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["category"] != CategoryAsyncLoader {
		t.Errorf("category = %v", fields["category"])
	}
	if fields["unit"] != "widget" {
		t.Errorf("unit = %v", fields["unit"])
	}
}

func TestLogReporter_NilInstance(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := NewLogReporter(zap.New(core))

	r.Report(errTest, nil, CategoryAsyncLoader)

	if logs.Len() != 1 {
		t.Fatalf("expected 1 log entry, got %d", logs.Len())
	}
}
