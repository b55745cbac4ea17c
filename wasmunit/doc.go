// Package wasmunit produces unit definitions from WebAssembly modules.
//
// A Runtime wraps a wazero runtime plus a compilation cache keyed by the
// module's content hash; compiling the same binary twice is free, and
// concurrent compiles of one binary are collapsed into a single call.
// Runtime.Loader builds the async factory a lazy definition wants: it
// compiles the guest, instantiates it, invokes its render export and
// returns the produced text as a unit definition.
//
// The guest contract is deliberately small. The module exports a
// function (default "render") taking no parameters and returning one
// i64: the high 32 bits are a pointer into linear memory, the low 32
// bits a byte length. The bytes at that location are the UTF-8 text the
// unit renders. WASI preview 1 imports are available to guests that
// need them.
package wasmunit
