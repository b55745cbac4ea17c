package unit

import "go.uber.org/zap"

// CategoryAsyncLoader tags errors surfaced by lazy unit resolution when no
// error view is configured.
const CategoryAsyncLoader = "async-loader"

// A Reporter receives errors that no view handles locally. Failures stay
// scoped to the reporting instance; the reporter is the end of the line.
type Reporter interface {
	Report(err error, inst *Instance, category string)
}

type logReporter struct {
	log *zap.Logger
}

// NewLogReporter returns a Reporter that logs every error through l.
func NewLogReporter(l *zap.Logger) Reporter {
	return &logReporter{log: l}
}

func (r *logReporter) Report(err error, inst *Instance, category string) {
	fields := []zap.Field{
		zap.String("category", category),
		zap.Error(err),
	}
	if inst != nil && inst.def != nil {
		fields = append(fields, zap.String("unit", inst.def.Name()))
	}
	r.log.Error("unhandled unit error", fields...)
}
