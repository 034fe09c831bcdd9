package polydraw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for polydraw and all its sub-packages.
// By default, polydraw produces no log output.
//
// Pass nil to restore the default silent behavior.
//
// Log levels used by polydraw:
//   - [slog.LevelDebug]: ignored input (short completions, rejected copies,
//     vertex input dropped during placement)
//   - [slog.LevelInfo]: lifecycle events (polygon completed, clone placed, reset)
//   - [slog.LevelWarn]: registration pairing violations in the canvas registry
//
// Example:
//
//	polydraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by polydraw.
// Sub-packages (canvas, input, script) call this to share the same
// configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
