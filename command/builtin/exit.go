package builtin

import (
	"io"

	"github.com/mwantia/tarsh/command"
)

// ExitCommand terminates the session.
type ExitCommand struct {
}

func (e *ExitCommand) Name() string {
	return "exit"
}

func (e *ExitCommand) Description() string {
	return "Terminate the session"
}

func (e *ExitCommand) Usage() string {
	return "exit"
}

func (e *ExitCommand) Execute(env command.Environment, args []string, w io.Writer) error {
	env.RequestExit()
	return nil
}
