package tarsh

import "errors"

// Fatal session errors. Everything else is printed to the user and consumed
// by the dispatch loop.
var (
	// ErrScriptNotFound marks a missing startup script; the caller is
	// expected to exit with a non-zero status.
	ErrScriptNotFound = errors.New("tarsh: startup script not found")
)
