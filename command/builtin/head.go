package builtin

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mwantia/tarsh/archive"
	"github.com/mwantia/tarsh/command"
	"github.com/mwantia/tarsh/data"
)

// headLineCount is the fixed number of lines head prints.
const headLineCount = 10

// HeadCommand prints the first lines of a file.
type HeadCommand struct {
}

func (h *HeadCommand) Name() string {
	return "head"
}

func (h *HeadCommand) Description() string {
	return "Print the first 10 lines of a file"
}

func (h *HeadCommand) Usage() string {
	return "head <file>"
}

// Execute prints up to headLineCount lines, stopping early at end of
// content. Content must decode as UTF-8; once an invalid line is detected
// nothing further is printed for this invocation.
func (h *HeadCommand) Execute(env command.Environment, args []string, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("head: %w", command.ErrMissingFileOperand)
	}

	resolved := data.Resolve(env.WorkingDir(), args[0])
	content, err := env.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, archive.ErrNotExist) || errors.Is(err, archive.ErrNotFile) {
			return fmt.Errorf("head: cannot open '%s' for reading: %w", args[0], err)
		}
		return fmt.Errorf("head: error reading '%s': %w", args[0], err)
	}

	rest := string(content)
	for n := 0; n < headLineCount; n++ {
		if rest == "" {
			break
		}

		line := rest
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i+1], rest[i+1:]
		} else {
			rest = ""
		}

		if !utf8.ValidString(line) {
			return fmt.Errorf("head: error reading '%s': %w", args[0], command.ErrInvalidEncoding)
		}

		fmt.Fprintln(w, strings.TrimRight(line, "\r\n"))
	}

	return nil
}
