package builtin

import (
	"fmt"
	"io"

	"github.com/mwantia/tarsh/command"
	"github.com/mwantia/tarsh/data"
)

// CdCommand changes the current directory.
type CdCommand struct {
}

func (cd *CdCommand) Name() string {
	return "cd"
}

func (cd *CdCommand) Description() string {
	return "Change the current directory"
}

func (cd *CdCommand) Usage() string {
	return "cd <path>"
}

func (cd *CdCommand) Execute(env command.Environment, args []string, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("cd: %w", command.ErrMissingOperand)
	}

	resolved := data.Resolve(env.WorkingDir(), args[0])
	if err := env.ChangeDir(resolved); err != nil {
		return fmt.Errorf("cd: %s: %w", args[0], err)
	}

	return nil
}
