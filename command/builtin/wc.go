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

// WcCommand counts lines, words and bytes of a file.
type WcCommand struct {
}

func (wc *WcCommand) Name() string {
	return "wc"
}

func (wc *WcCommand) Description() string {
	return "Count lines, words and bytes of a file"
}

func (wc *WcCommand) Usage() string {
	return "wc <file>"
}

// Execute is binary-safe: invalid UTF-8 runs are replaced with U+FFFD
// instead of failing, and the byte count covers the re-encoded result.
func (wc *WcCommand) Execute(env command.Environment, args []string, w io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("wc: %w", command.ErrMissingFileOperand)
	}

	resolved := data.Resolve(env.WorkingDir(), args[0])
	content, err := env.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, archive.ErrNotExist) || errors.Is(err, archive.ErrNotFile) {
			return fmt.Errorf("wc: %s: %w", args[0], archive.ErrNotExist)
		}
		return fmt.Errorf("wc: error reading '%s': %w", args[0], err)
	}

	text := string(content)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}

	lines := strings.Count(text, "\n")
	words := len(strings.Fields(text))

	fmt.Fprintf(w, "%d %d %d %s\n", lines, words, len(text), args[0])
	return nil
}
