package halftone

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record. Its handler reports every level disabled,
// so log calls return before building attributes.
var silent = slog.New(slog.DiscardHandler)

// current holds the logger shared by the editor, the transform and the
// source package. It may be swapped while renders are in flight.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes halftone's diagnostics to l. A nil logger restores the
// default, which discards everything.
//
// Records emitted:
//   - Debug "halftone: state change" (from, to) on every Editor transition
//   - Debug "halftone applied" (size, step, cells, drawn, rasterizer, elapsed)
//     after each dot pass
//   - Debug "halftone: params stored" when parameters change without a redraw
//   - Debug "source: decoded" / "source: fetched" from package source
//   - Warn "halftone: operation rejected" (op, state, err) when an Editor
//     call fails and leaves the editor unchanged
//
// Example:
//
//	halftone.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger. Package source logs through
// it, so one call to SetLogger covers loading and rendering.
func Logger() *slog.Logger {
	return current.Load()
}
