package errors

import (
	"fmt"
	"strings"
	"time"
)

// Phase indicates where in the unit lifecycle the error occurred
type Phase string

const (
	PhaseConfig  Phase = "config"  // option validation
	PhaseSetup   Phase = "setup"   // definition setup
	PhaseLoad    Phase = "load"    // asynchronous loading
	PhaseResolve Phase = "resolve" // result unwrap and validation
	PhaseRender  Phase = "render"  // node tree construction
)

// Kind categorizes the error
type Kind string

const (
	KindTimeout           Kind = "timeout"
	KindLoadFailed        Kind = "load_failed"
	KindInvalidDefinition Kind = "invalid_definition"
	KindInvalidInput      Kind = "invalid_input"
	KindNotFound          Kind = "not_found"
	KindCanceled          Kind = "canceled"
	KindInstantiation     Kind = "instantiation"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Unit   string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Unit != "" {
		b.WriteString(" in unit ")
		b.WriteString(e.Unit)
	}

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error.
// Two Errors match when their Phase and Kind are equal.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Unit sets the unit name
func (b *Builder) Unit(name string) *Builder {
	b.err.Unit = name
	return b
}

// Path sets the property path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Timeout creates an error for a load that did not settle within d
func Timeout(unit string, d time.Duration) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindTimeout,
		Unit:   unit,
		Detail: fmt.Sprintf("load did not settle within %s", d),
		Value:  d,
	}
}

// LoadFailed creates an error for a failed loader invocation
func LoadFailed(unit string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindLoadFailed,
		Unit:   unit,
		Detail: "loader failed",
		Cause:  cause,
	}
}

// InvalidDefinition creates an error for a resolved value that is not
// a usable unit definition
func InvalidDefinition(unit string, value any) *Error {
	return &Error{
		Phase:  PhaseResolve,
		Kind:   KindInvalidDefinition,
		Unit:   unit,
		Detail: fmt.Sprintf("resolved value %T is not a unit definition", value),
		Value:  value,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Canceled creates an error for work abandoned at instance teardown
func Canceled(unit string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindCanceled,
		Unit:   unit,
		Detail: "instance closed before load settled",
	}
}

// Instantiation creates an instantiation error
func Instantiation(unit string, cause error) *Error {
	return &Error{
		Phase:  PhaseSetup,
		Kind:   KindInstantiation,
		Unit:   unit,
		Detail: "mount unit instance",
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
