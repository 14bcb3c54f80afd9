package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/mwantia/tarsh/audit"
	"github.com/mwantia/tarsh/log"
)

// Dispatcher routes raw command lines to registered commands. Every
// dispatched line is recorded to the audit log before any validation, so
// lines that later fail arity or path checks still appear in the record.
type Dispatcher struct {
	commands map[string]Command
	audit    *audit.Writer
	log      *log.Logger
}

func NewDispatcher(audit *audit.Writer, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		commands: make(map[string]Command),
		audit:    audit,
		log:      logger,
	}
}

// Register adds a command under its name.
// Returns an error if the name is already taken.
func (d *Dispatcher) Register(cmd Command) error {
	name := cmd.Name()
	if _, exists := d.commands[name]; exists {
		return fmt.Errorf("tarsh: command '%s' already registered", name)
	}

	d.commands[name] = cmd
	return nil
}

// Dispatch records, tokenizes, and executes one raw command line on behalf
// of the environment's user. Blank lines are a no-op and are not recorded.
// Command failures are printed to w; they never propagate to the caller.
func (d *Dispatcher) Dispatch(env Environment, line string, w io.Writer) {
	if strings.TrimSpace(line) == "" {
		return
	}

	// The record keeps the line verbatim, surrounding whitespace included.
	if err := d.audit.Record(env.Username(), line); err != nil {
		d.log.Warn("audit record failed: %v", err)
	}

	tokens := strings.Fields(line)
	name := tokens[0]

	cmd, exists := d.commands[name]
	if !exists {
		fmt.Fprintf(w, "%s: %v\n", name, ErrUnknownCommand)
		return
	}

	d.log.Debug("dispatch %s (%d args)", name, len(tokens)-1)

	if err := cmd.Execute(env, tokens[1:], w); err != nil {
		fmt.Fprintln(w, err)
	}
}
