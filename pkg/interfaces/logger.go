package interfaces

import "context"

// Logger is the leveled logging contract used across folio packages. Its
// method set matches github.com/goliatone/go-logger so a glog logger can be
// adapted without reshaping call sites.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out named loggers, typically one per folio module
// ("folio.posts", "folio.ingest", ...).
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is implemented by loggers that can carry structured fields on
// every subsequent entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
