package wasmunit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"golang.org/x/sync/singleflight"

	"github.com/wippyai/view-runtime/errors"
)

// RuntimeConfig holds configuration for runtime creation.
type RuntimeConfig struct {
	// MemoryLimitPages caps guest memory in 64KB pages. 0 means the
	// wazero default.
	MemoryLimitPages uint32
}

// A Runtime compiles and instantiates guest modules. It is safe for
// concurrent use; compiled modules are cached by content hash for the
// lifetime of the runtime.
type Runtime struct {
	runtime wazero.Runtime

	mu       sync.Mutex
	compiled map[string]wazero.CompiledModule
	group    singleflight.Group
}

// NewRuntime creates a runtime with WASI preview 1 available to guests.
func NewRuntime(ctx context.Context) (*Runtime, error) {
	return NewRuntimeWithConfig(ctx, nil)
}

// NewRuntimeWithConfig creates a runtime with custom configuration.
func NewRuntimeWithConfig(ctx context.Context, cfg *RuntimeConfig) (*Runtime, error) {
	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}

	rt := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)
	if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
		_ = rt.Close(ctx)
		return nil, errors.Wrap(errors.PhaseSetup, errors.KindInstantiation, err, "instantiate wasi")
	}

	return &Runtime{
		runtime:  rt,
		compiled: make(map[string]wazero.CompiledModule),
	}, nil
}

// Close releases the runtime and every module compiled through it. All
// instances must be closed first.
func (r *Runtime) Close(ctx context.Context) error {
	r.mu.Lock()
	r.compiled = nil
	r.mu.Unlock()
	return r.runtime.Close(ctx)
}

func cacheKey(wasm []byte) string {
	sum := sha256.Sum256(wasm)
	return hex.EncodeToString(sum[:])
}

// Compile compiles wasm, returning a cached module when the same bytes
// were compiled before. Concurrent calls for identical bytes share one
// compilation.
func (r *Runtime) Compile(ctx context.Context, wasm []byte) (wazero.CompiledModule, error) {
	key := cacheKey(wasm)

	r.mu.Lock()
	if cm, ok := r.compiled[key]; ok {
		r.mu.Unlock()
		return cm, nil
	}
	r.mu.Unlock()

	v, err, _ := r.group.Do(key, func() (any, error) {
		cm, err := r.runtime.CompileModule(ctx, wasm)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		if r.compiled != nil {
			r.compiled[key] = cm
		}
		r.mu.Unlock()
		return cm, nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindLoadFailed, err, "compile module")
	}
	return v.(wazero.CompiledModule), nil
}
