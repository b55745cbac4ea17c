package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/view-runtime/lazy"
)

// run config.toml key mapping to the hosted unit tree.
type fileConfig struct {
	Title    string       `toml:"title"`
	Suspense bool         `toml:"suspense"`
	Fallback string       `toml:"fallback"`
	Units    []unitConfig `toml:"unit"`
}

type unitConfig struct {
	Name       string `toml:"name"`
	Kind       string `toml:"kind"` // text | wasm
	Text       string `toml:"text"`
	Source     string `toml:"source"`
	Func       string `toml:"func"`
	DelayMS    int64  `toml:"delay_ms"` // -1 disables the anti-flicker delay
	TimeoutMS  int64  `toml:"timeout_ms"`
	NoSuspense bool   `toml:"no_suspense"`
}

func (u *unitConfig) delay() time.Duration {
	if u.DelayMS < 0 {
		return lazy.NoDelay
	}
	return time.Duration(u.DelayMS) * time.Millisecond
}

func (u *unitConfig) timeout() time.Duration {
	return time.Duration(u.TimeoutMS) * time.Millisecond
}

func loadConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *fileConfig) validate() error {
	if len(c.Units) == 0 {
		return fmt.Errorf("config declares no units")
	}

	seen := make(map[string]bool, len(c.Units))
	for i := range c.Units {
		u := &c.Units[i]
		if u.Name == "" {
			return fmt.Errorf("unit %d: name is required", i)
		}
		if seen[u.Name] {
			return fmt.Errorf("unit %q declared twice", u.Name)
		}
		seen[u.Name] = true

		switch u.Kind {
		case "text":
			if u.Text == "" {
				return fmt.Errorf("unit %q: text kind requires text", u.Name)
			}
			if u.Source != "" {
				return fmt.Errorf("unit %q: text kind takes no source", u.Name)
			}
		case "wasm":
			if u.Source == "" {
				return fmt.Errorf("unit %q: wasm kind requires a source", u.Name)
			}
		default:
			return fmt.Errorf("unit %q: unknown kind %q", u.Name, u.Kind)
		}

		if u.DelayMS < -1 {
			return fmt.Errorf("unit %q: delay_ms must be -1, 0 or positive", u.Name)
		}
		if u.TimeoutMS < 0 {
			return fmt.Errorf("unit %q: timeout_ms must not be negative", u.Name)
		}
	}
	return nil
}

// find returns the unit named name, matching case-insensitively.
func (c *fileConfig) find(name string) (*unitConfig, error) {
	for i := range c.Units {
		if strings.EqualFold(c.Units[i].Name, name) {
			return &c.Units[i], nil
		}
	}
	return nil, fmt.Errorf("no unit named %q in config", name)
}
