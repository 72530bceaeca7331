package brandkit

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by brandkit and hands the same
// logger to gg, so canvas diagnostics land next to font and file events.
// By default both stay silent. Pass nil to restore the silent default.
// SetLogger is safe for concurrent use.
//
// Log levels used by brandkit:
//   - [slog.LevelDebug]: font lookups, canvas sizes, crop boxes
//   - [slog.LevelInfo]: files written
//   - [slog.LevelWarn]: fallback to an embedded font
//
// Example:
//
//	brandkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	gg.SetLogger(l)
}

// Logger returns the current logger used by brandkit.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
