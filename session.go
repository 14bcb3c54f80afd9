// Package tarsh implements an interactive command shell over a read-only
// tar archive treated as a virtual filesystem. Directories are derived from
// the flat entry namespace by prefix; nothing is ever written back to the
// archive.
package tarsh

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/mwantia/tarsh/archive"
	"github.com/mwantia/tarsh/audit"
	"github.com/mwantia/tarsh/command"
	"github.com/mwantia/tarsh/command/builtin"
	"github.com/mwantia/tarsh/data"
	"github.com/mwantia/tarsh/log"
)

// Session owns the current-directory state, the acting username, and the
// open archive and audit-log handles for one run of the shell. It drives
// startup-script execution followed by the interactive loop and guarantees
// handle release on every termination path.
type Session struct {
	id         string
	username   string
	scriptPath string
	workingDir string
	exiting    bool

	store      *archive.Store
	index      *archive.Index
	audit      *audit.Writer
	dispatcher *command.Dispatcher
	log        *log.Logger

	in       io.Reader
	out      io.Writer
	noPrompt bool
}

// NewSession opens the archive and the audit log and registers the builtin
// command set. Both open failures are fatal to session construction; on a
// partial failure, whatever was opened is released again.
func NewSession(username, archivePath, auditPath, scriptPath string, opts ...SessionOption) (*Session, error) {
	options := &SessionOptions{
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: log.Discard(),
	}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	store, err := archive.Open(archivePath)
	if err != nil {
		return nil, err
	}

	auditWriter, err := audit.Create(auditPath)
	if err != nil {
		store.Close()
		return nil, err
	}

	s := &Session{
		id:         uuid.NewString(),
		username:   username,
		scriptPath: scriptPath,
		workingDir: "/",

		store: store,
		index: archive.NewIndex(store),
		audit: auditWriter,
		log:   options.Logger,

		in:       options.Input,
		out:      options.Output,
		noPrompt: options.NoPrompt,
	}

	s.dispatcher = command.NewDispatcher(auditWriter, options.Logger)
	if err := builtin.Register(s.dispatcher); err != nil {
		s.Close()
		return nil, err
	}

	s.log.Debug("session %s: archive %s loaded with %d entries", s.id, archivePath, len(store.Entries()))
	return s, nil
}

// ID returns the unique id of this session, carried in diagnostics.
func (s *Session) ID() string {
	return s.id
}

// Run executes the startup script and then the interactive loop. It returns
// nil on any normal termination (exit command, end of input, context
// cancellation) and an error only when the startup script is missing.
func (s *Session) Run(ctx context.Context) error {
	if err := s.runScript(ctx); err != nil {
		return err
	}
	if s.exiting || ctx.Err() != nil {
		return nil
	}

	return s.runInteractive(ctx)
}

// Execute dispatches a single raw command line exactly as if it had been
// typed interactively, including the audit record.
func (s *Session) Execute(line string) {
	s.dispatcher.Dispatch(s, line, s.out)
}

func (s *Session) runScript(ctx context.Context) error {
	file, err := os.Open(s.scriptPath)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrScriptNotFound, s.scriptPath)
	}
	defer file.Close()

	s.log.Debug("session %s: running startup script %s", s.id, s.scriptPath)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if s.exiting || ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			s.Execute(line)
		}
	}

	return scanner.Err()
}

func (s *Session) runInteractive(ctx context.Context) error {
	lines := make(chan string, 1)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		s.prompt()

		select {
		case <-ctx.Done():
			// Interrupt terminates like exit.
			s.log.Debug("session %s: interrupted", s.id)
			fmt.Fprintln(s.out)
			return nil

		case line, open := <-lines:
			if !open {
				s.log.Debug("session %s: end of input", s.id)
				return nil
			}

			s.Execute(line)
			if s.exiting {
				return nil
			}
		}
	}
}

func (s *Session) prompt() {
	if !s.noPrompt {
		fmt.Fprintf(s.out, "%s@tarsh:%s$ ", s.username, s.workingDir)
	}
}

// Close releases the audit log and the archive. Safe to call on every
// termination path; errors from the audit flush take precedence.
func (s *Session) Close() error {
	s.log.Debug("session %s: closing", s.id)

	err := s.audit.Close()
	if cerr := s.store.Close(); err == nil {
		err = cerr
	}

	return err
}

// Username returns the acting user of this session.
func (s *Session) Username() string {
	return s.username
}

// WorkingDir returns the current directory as an absolute virtual path.
func (s *Session) WorkingDir() string {
	return s.workingDir
}

// ChangeDir moves the current directory to the given absolute path. Root
// always succeeds; any other target must be proven a directory by the entry
// prefix rule. On failure the current directory is left unchanged.
func (s *Session) ChangeDir(path string) error {
	if path != "/" && !s.index.Exists(path) {
		return archive.ErrNotExist
	}

	s.workingDir = path
	return nil
}

// ReadDir returns the sorted child names of the directory at path.
func (s *Session) ReadDir(path string) []string {
	return s.index.Children(path)
}

// ReadFile returns the content of the entry at the given absolute path.
func (s *Session) ReadFile(path string) ([]byte, error) {
	return s.store.ReadContent(data.EntryName(path))
}

// Chown changes the in-memory owner of the entry at the given absolute path.
func (s *Session) Chown(path, owner string) error {
	return s.store.SetOwner(data.EntryName(path), owner)
}

// RequestExit marks the session for termination after the current command.
func (s *Session) RequestExit() {
	s.exiting = true
}

// Store exposes the archive gateway, mainly for inspection in tests.
func (s *Session) Store() *archive.Store {
	return s.store
}
