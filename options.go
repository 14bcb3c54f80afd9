package tarsh

import (
	"io"

	"github.com/mwantia/tarsh/log"
)

type SessionOptions struct {
	Input    io.Reader
	Output   io.Writer
	Logger   *log.Logger
	NoPrompt bool
}

type SessionOption func(*SessionOptions) error

// WithInput replaces stdin as the interactive input source.
func WithInput(r io.Reader) SessionOption {
	return func(opts *SessionOptions) error {
		opts.Input = r
		return nil
	}
}

// WithOutput replaces stdout as the destination for command output, prompts
// and user-facing error messages.
func WithOutput(w io.Writer) SessionOption {
	return func(opts *SessionOptions) error {
		opts.Output = w
		return nil
	}
}

// WithLogger attaches a diagnostic logger. Without it, diagnostics are
// discarded.
func WithLogger(logger *log.Logger) SessionOption {
	return func(opts *SessionOptions) error {
		opts.Logger = logger
		return nil
	}
}

// WithoutPrompt suppresses the interactive prompt, for piped input.
func WithoutPrompt() SessionOption {
	return func(opts *SessionOptions) error {
		opts.NoPrompt = true
		return nil
	}
}
