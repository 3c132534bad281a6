package logger

import (
	"github.com/fatih/color" // Colored console output for the different log levels
)

// Colorized printing functions for the different log levels. These are
// package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the log level.

// Info logs informational messages in green color.
var Info = color.New(color.FgGreen).PrintfFunc()

// Step prints the per-task banner line in bold, so a run reads as a
// sequence of task sections with their status lines underneath.
var Step = color.New(color.FgWhite, color.Bold).PrintfFunc()

// Warn logs warning messages in bright magenta color.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It defaults to a no-op because task registration happens before the CLI
// has parsed the --debug flag and called Init.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging.
// When enabled, Debug prints messages in cyan color.
// When disabled, Debug is a no-op function that silently ignores debug logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}

// DisableColor turns off colorized output for every level, for dumb
// terminals or output captured to a file.
func DisableColor() {
	color.NoColor = true
}
