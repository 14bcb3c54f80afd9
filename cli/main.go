package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	tarsh "github.com/mwantia/tarsh"
	"github.com/mwantia/tarsh/log"
)

type flagValues struct {
	user, fs, logPath, script string
	logLevel, debugLog        string
}

var flags flagValues

var rootCmd = &cobra.Command{
	Use:   "tarsh",
	Short: "Interactive shell over a read-only tar archive",
	Long: `tarsh presents a tar archive as a virtual filesystem and runs an
interactive command shell (ls, cd, head, chown, wc, exit) over it.

Every dispatched command line is appended to a CSV action log together with
the acting user. The startup script is executed line by line before the
interactive prompt appears; a missing script is fatal.

Ownership changes made with chown live in memory only and are never written
back to the archive.`,
	Args:          cobra.NoArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&flags.user, "user", "", "Username shown in the prompt and recorded in the action log")
	rootCmd.Flags().StringVar(&flags.fs, "fs", "", "Path to the virtual filesystem archive (tar or tar.gz)")
	rootCmd.Flags().StringVar(&flags.logPath, "log", "", "Path to the action log (CSV)")
	rootCmd.Flags().StringVar(&flags.script, "script", "", "Path to the startup script")
	rootCmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Diagnostic log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&flags.debugLog, "debug-log", "", "Optional rotating file for diagnostic output")

	for _, name := range []string{"user", "fs", "log", "script"} {
		cobra.CheckErr(rootCmd.MarkFlagRequired(name))
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := log.NewLogger("tarsh", log.Parse(flags.logLevel), flags.debugLog)

	opts := []tarsh.SessionOption{
		tarsh.WithLogger(logger),
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, tarsh.WithoutPrompt())
	}

	session, err := tarsh.NewSession(flags.user, flags.fs, flags.logPath, flags.script, opts...)
	if err != nil {
		return err
	}
	defer session.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return session.Run(ctx)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
