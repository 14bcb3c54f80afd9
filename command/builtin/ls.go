package builtin

import (
	"fmt"
	"io"

	"github.com/mwantia/tarsh/command"
)

// LsCommand lists the children of the current directory.
type LsCommand struct {
}

func (ls *LsCommand) Name() string {
	return "ls"
}

func (ls *LsCommand) Description() string {
	return "List the contents of the current directory"
}

func (ls *LsCommand) Usage() string {
	return "ls"
}

// Execute prints the sorted child names, each followed by two spaces.
// An empty directory prints a bare newline.
func (ls *LsCommand) Execute(env command.Environment, args []string, w io.Writer) error {
	for _, name := range env.ReadDir(env.WorkingDir()) {
		fmt.Fprintf(w, "%s  ", name)
	}
	fmt.Fprintln(w)

	return nil
}
