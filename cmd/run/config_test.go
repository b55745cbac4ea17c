package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/wippyai/view-runtime/lazy"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
title = "demo"
suspense = true
fallback = "warming up"

[[unit]]
name = "greeting"
kind = "text"
text = "hello"
delay_ms = -1

[[unit]]
name = "banner"
kind = "wasm"
source = "banner.wasm"
func = "draw"
timeout_ms = 3000
no_suspense = true
	`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Title != "demo" {
		t.Fatalf("unexpected title: %q", cfg.Title)
	}
	if !cfg.Suspense || cfg.Fallback != "warming up" {
		t.Fatalf("unexpected suspense settings: %v %q", cfg.Suspense, cfg.Fallback)
	}
	if len(cfg.Units) != 2 {
		t.Fatalf("unexpected unit count: %d", len(cfg.Units))
	}

	greeting := cfg.Units[0]
	if greeting.Kind != "text" || greeting.Text != "hello" {
		t.Fatalf("unexpected text unit: %+v", greeting)
	}
	if greeting.delay() != lazy.NoDelay {
		t.Fatalf("delay_ms = -1 should map to NoDelay, got %v", greeting.delay())
	}

	banner := cfg.Units[1]
	if banner.Kind != "wasm" || banner.Source != "banner.wasm" || banner.Func != "draw" {
		t.Fatalf("unexpected wasm unit: %+v", banner)
	}
	if banner.timeout() != 3*time.Second {
		t.Fatalf("unexpected timeout: %v", banner.timeout())
	}
	if !banner.NoSuspense {
		t.Fatalf("expected no_suspense to carry through")
	}
}

func TestLoadConfigRejectsBadManifests(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no units", `title = "empty"`},
		{"missing name", `
[[unit]]
kind = "text"
text = "x"
		`},
		{"duplicate name", `
[[unit]]
name = "a"
kind = "text"
text = "x"
[[unit]]
name = "a"
kind = "text"
text = "y"
		`},
		{"unknown kind", `
[[unit]]
name = "a"
kind = "video"
		`},
		{"text without text", `
[[unit]]
name = "a"
kind = "text"
		`},
		{"text with source", `
[[unit]]
name = "a"
kind = "text"
text = "x"
source = "a.wasm"
		`},
		{"wasm without source", `
[[unit]]
name = "a"
kind = "wasm"
		`},
		{"negative timeout", `
[[unit]]
name = "a"
kind = "text"
text = "x"
timeout_ms = -1
		`},
		{"delay below -1", `
[[unit]]
name = "a"
kind = "text"
text = "x"
delay_ms = -2
		`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, tc.content)); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestConfigFind(t *testing.T) {
	cfg := &fileConfig{Units: []unitConfig{
		{Name: "Greeting", Kind: "text", Text: "hi"},
	}}

	u, err := cfg.find("greeting")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if u.Name != "Greeting" {
		t.Fatalf("unexpected unit: %+v", u)
	}
	if _, err := cfg.find("missing"); err == nil {
		t.Fatal("expected an error for an unknown unit")
	}
}
