// Package builtin provides the fixed command set of the shell:
// ls, cd, head, chown, wc and exit.
package builtin

import "github.com/mwantia/tarsh/command"

// Register adds all builtin commands to the dispatcher.
func Register(d *command.Dispatcher) error {
	commands := []command.Command{
		&LsCommand{},
		&CdCommand{},
		&HeadCommand{},
		&ChownCommand{},
		&WcCommand{},
		&ExitCommand{},
	}

	for _, cmd := range commands {
		if err := d.Register(cmd); err != nil {
			return err
		}
	}

	return nil
}
