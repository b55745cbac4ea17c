// Package errors provides structured error types for the view-runtime library.
//
// Errors are categorized by Phase (where in the unit lifecycle the error
// occurred) and Kind (error category). The Error type carries the unit name,
// an optional property path, a human-readable detail and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLoad, errors.KindLoadFailed).
//		Unit("dashboard").
//		Detail("fetch remote definition").
//		Cause(fetchErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Timeout("dashboard", 5*time.Second)
//	err := errors.LoadFailed("dashboard", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
