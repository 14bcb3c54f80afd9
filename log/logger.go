// Package log provides the leveled diagnostic logger for the shell.
// Diagnostics go to stderr and, optionally, a rotating file; they are kept
// strictly apart from command output, which belongs to the session writer.
package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	writer io.Writer

	Name    string
	Level   LogLevel
	NoColor bool

	TimeFormat string
}

// NewLogger creates a logger writing to stderr. If file is non-empty, a
// rotating copy of every line is kept there as well.
func NewLogger(name string, level LogLevel, file string) *Logger {
	l := &Logger{
		Name:       name,
		Level:      level,
		TimeFormat: "2006-01-02 15:04:05",
	}

	var writers []io.Writer
	writers = append(writers, os.Stderr)

	if file != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    64,
			MaxBackups: 3,
			MaxAge:     14,
		})
		// File sinks carry no escape codes.
		l.NoColor = true
	}

	l.writer = io.MultiWriter(writers...)
	return l
}

// Discard returns a logger that drops everything. Used as the default when
// no logger is configured.
func Discard() *Logger {
	return &Logger{
		writer: io.Discard,
		Level:  Error + 1,
	}
}

func (l *Logger) log(level LogLevel, msg string, args ...any) {
	if level < l.Level {
		return
	}

	prefix := fmt.Sprintf("[%s] %-5s", time.Now().Format(l.TimeFormat), level)
	if l.Name != "" {
		prefix = fmt.Sprintf("%s [%s]", prefix, l.Name)
	}

	formatted := fmt.Sprintf(msg, args...)
	if l.NoColor {
		fmt.Fprintf(l.writer, "%s %s\n", prefix, formatted)
	} else {
		fmt.Fprintf(l.writer, "%s%s %s\033[0m\n", color(level), prefix, formatted)
	}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.log(Debug, msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.log(Info, msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.log(Warn, msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.log(Error, msg, args...)
}

// Named returns a child logger sharing the writer under a nested name.
func (l *Logger) Named(name string) *Logger {
	child := *l
	if l.Name != "" {
		name = fmt.Sprintf("%s/%s", l.Name, name)
	}
	child.Name = name

	return &child
}

func color(l LogLevel) string {
	switch l {
	case Debug:
		return "\033[34m"
	case Info:
		return "\033[32m"
	case Warn:
		return "\033[33m"
	case Error:
		return "\033[31m"
	default:
		return "\033[0m"
	}
}
