package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"selector-generator/internal/gen"
)

// CheckResult reports whether the generated file matches its sources.
type CheckResult struct {
	File     string `json:"file"`
	UpToDate bool   `json:"up_to_date"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail when the generated selectors file is out of date",
		Long: `Regenerate the selectors file in memory and compare it with the file on disk.

Exits with status 1 when the file is missing or differs, so CI can catch
types that changed without regenerating their selectors.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "path to config file")

	return cmd
}

func runCheck(opts *GenOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	cfg, err := loadConfig(opts.Config, opts.Env)
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading config", err)
	}

	g, err := generate(cfg, opts.logger())
	if err != nil {
		_ = formatter.Error(ErrCodeLoad, err.Error(), nil)
		return WrapExitError(ExitCommandError, "generating selectors", err)
	}

	if g.File == nil {
		_ = formatter.Diagnostics(&g.Analysis.Diagnostics)
		return NewExitError(ExitFailure, fmt.Sprintf("%d type(s) could not be described", len(g.Analysis.Diagnostics.Errors)))
	}

	stale, err := gen.Stale([]gen.GeneratedFile{*g.File}, g.OutputDir)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "reading generated file", err)
	}

	result := CheckResult{File: g.OutputPath, UpToDate: len(stale) == 0}

	if !result.UpToDate {
		msg := fmt.Sprintf("%s is out of date; run selector-generator gen", relPath(g.OutputPath))
		_ = formatter.Error(ErrCodeStale, msg, result)

		return NewExitError(ExitFailure, msg)
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ %s is up to date\n", relPath(g.OutputPath))

	return nil
}
