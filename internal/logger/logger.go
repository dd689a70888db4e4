package logger

import (
	"github.com/fatih/color" // Colored console output for per-keycap progress reporting
)

// Colorized printing functions for the different log levels. These are
// package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.

// Info logs informational messages (renders finishing, fonts installed) in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages (skipped keycaps, unknown names) in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages (failed renders, bad downloads) in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Bright prints emphasized status lines (the "Rendering foo.stl..." banners) in
// bold. The batch driver uses it for anything the user is meant to notice.
var Bright = color.New(color.Bold).PrintfFunc()

// Debug logs debug messages in cyan when enabled, otherwise is a no-op.
// It is reassigned during Init based on the --debug flag.
var Debug = func(format string, a ...any) {}

// Init initializes the logger, enabling or disabling debug logging.
// When disabled, Debug is a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
