package logger

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/yaoapp/jumia/config"
	kunlog "github.com/yaoapp/kun/log"
)

var (
	gray   = color.New(color.FgHiBlack)
	cyan   = color.New(color.FgCyan)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
)

// Logger provides tagged leveled logging. The client, the gateway bridge and
// every extension share this implementation.
//
// Dev mode  → colored stdout + kun/log.
// Prod mode → kun/log only.
type Logger struct {
	tag string
}

// New creates a Logger tagged with the given component name
// (e.g. "client", "bridge", "ping", "status").
func New(tag string) *Logger {
	return &Logger{tag: tag}
}

// Tag returns the component name.
func (l *Logger) Tag() string { return l.tag }

func (l *Logger) prefix() string {
	return fmt.Sprintf("[jumia:%s]", l.tag)
}

func (l *Logger) Trace(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if config.IsDevelopment() {
		gray.Printf("  → %s %s\n", l.prefix(), msg)
	}
	kunlog.Trace("%s %s", l.prefix(), msg)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if config.IsDevelopment() {
		gray.Printf("  • %s %s\n", l.prefix(), msg)
	}
	kunlog.Debug("%s %s", l.prefix(), msg)
}

func (l *Logger) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if config.IsDevelopment() {
		cyan.Printf("  ℹ %s %s\n", l.prefix(), msg)
	}
	kunlog.Info("%s %s", l.prefix(), msg)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if config.IsDevelopment() {
		yellow.Printf("  ⚠ %s %s\n", l.prefix(), msg)
	}
	kunlog.Warn("%s %s", l.prefix(), msg)
}

func (l *Logger) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if config.IsDevelopment() {
		red.Printf("  ✗ %s %s\n", l.prefix(), msg)
	}
	kunlog.Error("%s %s", l.prefix(), msg)
}

// IsDev returns true when running in development mode.
func IsDev() bool {
	return config.IsDevelopment()
}
