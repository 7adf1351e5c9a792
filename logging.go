package uthread

import (
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// logger is the narrow interface the scheduler logs through. It exists so
// that WithLogger accepts a plain, easy-to-implement shape instead of
// forcing every caller to understand logiface's generic builder API — the
// adaptation to logiface happens once, in logifaceLogger below.
type logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// noopLogger is the default logger installed by Init when no WithLogger
// option is given. The scheduler's hot path (scheduleSwitch) always calls
// through rt.logger, so this keeps the zero-configuration cost to an
// interface call that immediately returns.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// logifaceLogger adapts a github.com/joeycumines/logiface.Logger to this
// package's logger interface, translating the simple message+key/value
// call sites used throughout the scheduler into logiface's fluent,
// event-builder style.
type logifaceLogger struct {
	l *logiface.Logger[*stumpy.Event]
}

// NewStumpyLogger builds a logger that writes newline-delimited JSON via
// stumpy, at the given minimum level. Callers preferring a different
// logiface backend can supply their own by implementing this package's
// logger interface directly and passing it to WithLogger.
func NewStumpyLogger(level logiface.Level) logger {
	return &logifaceLogger{
		l: logiface.New(
			stumpy.L.WithStumpy(),
			logiface.WithLevel[*stumpy.Event](level),
		),
	}
}

func (a *logifaceLogger) log(b *logiface.Builder[*stumpy.Event], msg string, kv []any) {
	if b == nil {
		return
	}
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		switch v := kv[i+1].(type) {
		case string:
			b = b.Str(key, v)
		case int:
			b = b.Int(key, v)
		default:
			b = b.Any(key, v)
		}
	}
	b.Log(msg)
}

func (a *logifaceLogger) Debug(msg string, kv ...any) { a.log(a.l.Debug(), msg, kv) }
func (a *logifaceLogger) Info(msg string, kv ...any)  { a.log(a.l.Info(), msg, kv) }
func (a *logifaceLogger) Error(msg string, kv ...any) { a.log(a.l.Err(), msg, kv) }
