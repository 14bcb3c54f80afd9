package command

import "errors"

// User input errors. Like the archive errors, the messages double as the
// user-visible suffix of shell diagnostics.
var (
	ErrUnknownCommand     = errors.New("command not found")
	ErrMissingOperand     = errors.New("missing operand")
	ErrMissingFileOperand = errors.New("missing file operand")
	ErrInvalidEncoding    = errors.New("invalid encoding")
)
