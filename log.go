package dock

import (
	"fmt"
	"log/slog"
	"os"
)

// logLevel controls the log level for docking debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// dockLogger is the logger for layout and drag debugging.
var dockLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// verbose returns true if debug logging is enabled.
func verbose() bool {
	return logLevel.Level() <= slog.LevelDebug
}

// assertf panics when a caller breaks the API contract (widgets outside a
// window, unbalanced Begin/End calls, unknown ids).
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("dock: "+format, args...))
	}
}
