package builtin

import (
	"fmt"
	"io"

	"github.com/mwantia/tarsh/command"
	"github.com/mwantia/tarsh/data"
)

// ChownCommand changes the in-memory owner of an entry.
type ChownCommand struct {
}

func (ch *ChownCommand) Name() string {
	return "chown"
}

func (ch *ChownCommand) Description() string {
	return "Change the owner of a file for this session"
}

func (ch *ChownCommand) Usage() string {
	return "chown <owner> <file>"
}

func (ch *ChownCommand) Execute(env command.Environment, args []string, w io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("chown: %w", command.ErrMissingOperand)
	}

	owner, filename := args[0], args[1]

	resolved := data.Resolve(env.WorkingDir(), filename)
	if err := env.Chown(resolved, owner); err != nil {
		return fmt.Errorf("chown: cannot access '%s': %w", filename, err)
	}

	fmt.Fprintf(w, "Changed owner of '%s' to '%s'\n", filename, owner)
	return nil
}
