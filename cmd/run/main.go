package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/view-runtime/lazy"
	"github.com/wippyai/view-runtime/suspense"
	"github.com/wippyai/view-runtime/tui"
	"github.com/wippyai/view-runtime/unit"
	"github.com/wippyai/view-runtime/wasmunit"
)

func main() {
	var (
		configFile  = flag.String("config", "", "Path to the unit manifest (TOML)")
		unitName    = flag.String("unit", "", "Render only the named unit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		wait        = flag.Duration("wait", 5*time.Second, "How long one-shot mode waits for loads to settle")
	)
	flag.Parse()

	if *configFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: run -config <manifest.toml> [-unit name]")
		fmt.Fprintln(os.Stderr, "       run -config <manifest.toml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *debug {
		unit.Debug = true
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		unit.SetLogger(logger)
		defer logger.Sync()
	}

	if err := run(*configFile, *unitName, *interactive, *wait); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, unitName string, interactive bool, wait time.Duration) error {
	ctx := context.Background()

	cfg, err := loadConfig(configFile)
	if err != nil {
		return err
	}

	rt, err := wasmunit.NewRuntime(ctx)
	if err != nil {
		return err
	}
	defer rt.Close(ctx)

	if interactive {
		return runInteractive(cfg, rt, unitName)
	}

	root, err := buildRoot(cfg, rt, unitName)
	if err != nil {
		return err
	}
	return runOnce(root, wait)
}

// buildRoot composes the manifest's units into one renderable tree: each
// unit becomes a lazy definition, the set is grouped, and when the
// manifest asks for it the group goes behind a suspense boundary.
func buildRoot(cfg *fileConfig, rt *wasmunit.Runtime, only string) (unit.Definition, error) {
	units := cfg.Units
	if only != "" {
		u, err := cfg.find(only)
		if err != nil {
			return nil, err
		}
		units = []unitConfig{*u}
	}

	defs := make([]unit.Definition, 0, len(units))
	for i := range units {
		def, err := buildUnit(&units[i], rt)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}

	group := unit.Func("units", func(ctx *unit.Context) *unit.Node {
		nodes := make([]*unit.Node, 0, len(defs))
		for _, d := range defs {
			nodes = append(nodes, unit.NewNode(d, nil, nil))
		}
		return unit.Group(nodes...)
	})

	if !cfg.Suspense {
		return group, nil
	}

	fallback := cfg.Fallback
	if fallback == "" {
		fallback = "loading"
	}
	return suspense.New(suspense.Options{
		Content:  group,
		Fallback: tui.Loading(fallback),
	})
}

func buildUnit(u *unitConfig, rt *wasmunit.Runtime) (unit.Definition, error) {
	var loader func(context.Context) (unit.Definition, error)
	switch u.Kind {
	case "text":
		text := u.Text
		name := u.Name
		loader = func(context.Context) (unit.Definition, error) {
			return unit.Text(name, text), nil
		}
	case "wasm":
		var err error
		loader, err = rt.Loader(wasmunit.Config{
			Path: u.Source,
			Func: u.Func,
			Name: u.Name,
		})
		if err != nil {
			return nil, err
		}
	}

	return lazy.New(lazy.Options{
		Loader:     loader,
		Loading:    tui.Loading(u.Name),
		Error:      tui.ErrorView(),
		Delay:      u.delay(),
		Timeout:    u.timeout(),
		NoSuspense: u.NoSuspense,
		Name:       u.Name,
	})
}

// runOnce renders the tree until two consecutive frames match or the
// wait deadline passes, then prints the final frame.
func runOnce(root unit.Definition, wait time.Duration) error {
	tree, err := tui.NewTree(root, tui.TreeOptions{
		Reporter: unit.NewLogReporter(unit.Logger()),
	})
	if err != nil {
		return err
	}
	defer tree.Close()

	out := tree.Render()
	deadline := time.Now().Add(wait)
	for time.Now().Before(deadline) {
		time.Sleep(50 * time.Millisecond)
		next := tree.Render()
		if next == out && next != "" {
			break
		}
		out = next
	}

	fmt.Println(out)
	return nil
}
