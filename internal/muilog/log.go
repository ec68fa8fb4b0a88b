// Package muilog provides the interpreter's debug-logging toggle, mirrored
// from go-theft-auto-gui's focus_registry.go verbosity pattern.
package muilog

import (
	"log/slog"
	"os"
)

// level controls the log level for interpreter debug logging.
// Default is slog.LevelInfo (quiet). SetVerbose(true) sets it to
// slog.LevelDebug.
var level = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for the interpreter.
func SetVerbose(v bool) {
	if v {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// Verbose returns true if interpreter debug logging is enabled.
func Verbose() bool {
	return level.Level() <= slog.LevelDebug
}

// Logger is the shared logger for form-transition, focus-move and
// focus-refusal debugging. Never called from the per-field DRAW path.
var Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
