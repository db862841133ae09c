package logger

import (
	"io"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Out is the destination of every log line.
// It defaults to color.Output (standard output, ANSI-aware on Windows consoles)
// and is swapped out by tests that need to inspect what was printed.
var Out io.Writer = color.Output

// Colored printers for the different log levels.
var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgHiMagenta)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

// debugEnabled toggles Debug output. It is set by Init.
var debugEnabled bool

// Info logs informational messages in green color.
// Green is typically used for success or normal info to catch user attention pleasantly.
func Info(format string, a ...any) {
	infoColor.Fprintf(Out, format, a...)
}

// Warn logs warning messages in bright magenta color.
// User-facing input problems (bad arguments, missing directories) go through here.
func Warn(format string, a ...any) {
	warnColor.Fprintf(Out, format, a...)
}

// Error logs error messages in red color.
func Error(format string, a ...any) {
	errorColor.Fprintf(Out, format, a...)
}

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
func Debug(format string, a ...any) {
	if !debugEnabled {
		return
	}
	debugColor.Fprintf(Out, format, a...)
}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// Parameters:
// - enableDebug: boolean flag to turn debug messages on or off.
func Init(enableDebug bool) {
	debugEnabled = enableDebug
}

// DebugEnabled reports whether Debug currently prints anything.
func DebugEnabled() bool {
	return debugEnabled
}
