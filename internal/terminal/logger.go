package terminal

import (
	"fmt"
	"os"
)

// Style represents a log message style.
type Style string

const (
	StyleInfo    Style = "info"
	StyleWarning Style = "warning"
	StyleError   Style = "error"
	StyleDim     Style = "dim"
)

// Logger provides styled logging to stderr for human-directed chatter.
// Diagnostic report lines are not styled and do not go through here.
type Logger struct{}

// NewLogger creates a new logger.
func NewLogger() *Logger {
	return &Logger{}
}

// Log prints a styled log message to stderr.
func (l *Logger) Log(msg string, style Style) {
	styleColor := Cyan
	switch style {
	case StyleInfo:
		styleColor = Cyan
	case StyleWarning:
		styleColor = Yellow
	case StyleError:
		styleColor = Red
	case StyleDim:
		styleColor = Dim
	}

	tag := fmt.Sprintf("%s[%s%soserr%s%s]%s",
		Color(Dim), Color(Reset), Color(styleColor), Color(Reset), Color(Dim), Color(Reset))
	fmt.Fprintf(os.Stderr, "%s %s\n", tag, msg)
}

// Logf prints a formatted styled log message to stderr.
func (l *Logger) Logf(style Style, format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...), style)
}
