package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"selector-generator/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Env is read once when the command tree is built.
	Env config.Env
	// Logger is configured before any subcommand runs.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the selector-generator CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

	cmd := &cobra.Command{
		Use:   "selector-generator",
		Short: "Generate partial-response field selectors from Go types",
		Long: `Generate partial-response field selectors from Go struct types.

A selector such as "nextPageToken,files(id,sharingUser/emailAddress)" lists
every field of a response type and is sent as the fields query parameter.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}

			env, err := config.LoadEnv()
			if err != nil {
				return WrapExitError(ExitCommandError, "reading environment", err)
			}

			opts.Env = env

			logger, err := newLogger(cmd.ErrOrStderr(), env.LogLevel, opts.Verbose)
			if err != nil {
				return WrapExitError(ExitCommandError, "configuring logging", err)
			}

			opts.Logger = logger

			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewPrintCommand(opts))
	cmd.AddCommand(NewAnalyzeCommand(opts))
	cmd.AddCommand(NewGenCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// formatter builds the output formatter of a command.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Keep JSON on stdout parseable
		Verbose:   o.Verbose,
	}
}

// logger returns the configured logger, or a discarding one when the root
// pre-run hook did not run (subcommands executed on their own in tests).
func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return o.Logger
}
