package command

import "io"

// Environment is a simplified view of the running session.
// It strips away all functions not required for command operations; handlers
// deal in absolute virtual paths and never touch the archive directly.
type Environment interface {
	// Username returns the acting user for this session.
	Username() string

	// WorkingDir returns the current directory as a normalized absolute path.
	WorkingDir() string

	// ChangeDir moves the current directory to the given absolute path.
	// Returns an error if the path does not denote a directory; the current
	// directory is left unchanged in that case.
	ChangeDir(path string) error

	// ReadDir returns the sorted child names of the directory at path.
	ReadDir(path string) []string

	// ReadFile returns the content of the entry at the given absolute path.
	ReadFile(path string) ([]byte, error)

	// Chown changes the owner of the entry at the given absolute path.
	// The mutation is in-memory only.
	Chown(path, owner string) error

	// RequestExit asks the session to terminate after the current command.
	RequestExit()
}

// Command represents a single executable shell command.
type Command interface {
	// Name returns the command identifier
	Name() string

	// Description returns human-readable help text
	Description() string

	// Usage returns a usage string for help (e.g. "cd <path>")
	Usage() string

	// Execute runs the command against the session environment. Arguments are
	// the whitespace tokens after the command name; operand validation is the
	// command's responsibility. The returned error is printed to the user and
	// never terminates the session.
	Execute(env Environment, args []string, w io.Writer) error
}
