// Package logger provides the colored console logger used across the application.
package logger

import (
	"errors"
	"io"
	"log"
)

const colorReset = "\033[0m"

// Logger writes tagged, leveled lines such as "[APP] [INFO] message".
// It is safe for concurrent use.
type Logger struct {
	name  string
	color string
	out   *log.Logger
}

// New creates a Logger named name whose tag is printed in color.
func New(name, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, errors.New("logger name is required")
	}
	if w == nil {
		return nil, errors.New("logger writer is required")
	}

	return &Logger{
		name:  name,
		color: color,
		out:   log.New(w, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write("INFO", msg)
}

// Warn logs a recoverable problem.
func (l *Logger) Warn(msg string) {
	l.write("WARN", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write("ERROR", msg)
}

func (l *Logger) write(level, msg string) {
	if l.color == "" {
		l.out.Printf("[%s] [%s] %s", l.name, level, msg)
		return
	}
	l.out.Printf("%s[%s]%s [%s] %s", l.color, l.name, colorReset, level, msg)
}
