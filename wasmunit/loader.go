package wasmunit

import (
	"context"
	"os"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/view-runtime/errors"
	"github.com/wippyai/view-runtime/unit"
)

// DefaultExport is the guest function invoked when Config.Func is empty.
const DefaultExport = "render"

// Config describes one guest-backed unit. Exactly one of Path and Bytes
// must be set.
type Config struct {
	// Path to a .wasm binary, read when the loader runs.
	Path string

	// Bytes is the binary itself, for callers that embed modules.
	Bytes []byte

	// Func is the exported render function. Defaults to DefaultExport.
	Func string

	// Name identifies the produced definition. Defaults to the export
	// name.
	Name string
}

func (c *Config) validate() error {
	if c.Path == "" && len(c.Bytes) == 0 {
		return errors.InvalidInput(errors.PhaseConfig, "wasm unit requires a path or bytes")
	}
	if c.Path != "" && len(c.Bytes) > 0 {
		return errors.InvalidInput(errors.PhaseConfig, "wasm unit takes a path or bytes, not both")
	}
	return nil
}

func (c *Config) export() string {
	if c.Func != "" {
		return c.Func
	}
	return DefaultExport
}

func (c *Config) name() string {
	if c.Name != "" {
		return c.Name
	}
	return c.export()
}

// Loader builds an async unit factory from cfg. The factory compiles the
// guest through the runtime's cache, instantiates it, calls its render
// export once and returns the produced text as a definition. It has the
// shape a lazy definition's Loader wants.
func (r *Runtime) Loader(cfg Config) (func(context.Context) (unit.Definition, error), error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return func(ctx context.Context) (unit.Definition, error) {
		wasm := cfg.Bytes
		if cfg.Path != "" {
			var err error
			wasm, err = os.ReadFile(cfg.Path)
			if err != nil {
				return nil, errors.LoadFailed(cfg.name(), err)
			}
		}

		text, err := r.renderText(ctx, wasm, cfg.export(), cfg.name())
		if err != nil {
			return nil, err
		}
		return unit.Text(cfg.name(), text), nil
	}, nil
}

// renderText instantiates wasm and reads the text its export produces.
// The export takes no parameters and returns one i64: pointer in the
// high 32 bits, byte length in the low 32.
func (r *Runtime) renderText(ctx context.Context, wasm []byte, export, name string) (string, error) {
	compiled, err := r.Compile(ctx, wasm)
	if err != nil {
		return "", err
	}

	modCfg := wazero.NewModuleConfig().WithName("")
	mod, err := r.runtime.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		return "", errors.Instantiation(name, err)
	}
	defer mod.Close(ctx)

	fn := mod.ExportedFunction(export)
	if fn == nil {
		return "", errors.NotFound(errors.PhaseResolve, "export", export)
	}

	results, err := fn.Call(ctx)
	if err != nil {
		return "", errors.LoadFailed(name, err)
	}
	if len(results) != 1 {
		return "", errors.New(errors.PhaseResolve, errors.KindInvalidDefinition).
			Unit(name).
			Detail("export %s returned %d results, want 1", export, len(results)).
			Build()
	}

	ptr := uint32(results[0] >> 32)
	size := uint32(results[0])
	if size == 0 {
		return "", nil
	}

	mem := mod.Memory()
	if mem == nil {
		return "", errors.New(errors.PhaseResolve, errors.KindInvalidDefinition).
			Unit(name).
			Detail("module exports no memory").
			Build()
	}
	data, ok := mem.Read(ptr, size)
	if !ok {
		return "", errors.New(errors.PhaseResolve, errors.KindInvalidDefinition).
			Unit(name).
			Detail("export %s returned out-of-range memory [%d, %d)", export, ptr, ptr+size).
			Build()
	}
	// copy before the instance closes
	return string(data), nil
}
