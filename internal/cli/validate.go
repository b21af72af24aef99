package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"selector-generator/selector"
)

// ValidationResult holds the outcome of validating a selector.
type ValidationResult struct {
	Valid     bool   `json:"valid"`
	Segments  int    `json:"segments"`
	Canonical string `json:"canonical"`
	Offset    int    `json:"offset,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <selector>",
		Short: "Check a selector string against the selector grammar",
		Long: `Check that a selector is well formed: comma-separated slash paths, with
parenthesized groups after collection names, no empty items and balanced
parentheses.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, sel string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	segs, err := selector.Parse(sel)
	if err != nil {
		return outputSyntaxError(formatter, sel, err)
	}

	result := ValidationResult{Valid: true, Segments: len(segs), Canonical: selector.Format(segs)}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ valid selector (%d top-level segments)\n", result.Segments)

	return nil
}

// outputSyntaxError reports err with a caret under the offending byte.
func outputSyntaxError(formatter *OutputFormatter, sel string, err error) error {
	var syn *selector.SyntaxError
	if !errors.As(err, &syn) {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, "validating selector", err)
	}

	if formatter.Format == "json" {
		_ = formatter.Error(ErrCodeSyntax, syn.Msg, ValidationResult{Offset: syn.Offset})
	} else {
		fmt.Fprintln(formatter.Writer, "✗ invalid selector")
		fmt.Fprintf(formatter.Writer, "  %s\n", sel)
		fmt.Fprintf(formatter.Writer, "  %s^ %s\n", strings.Repeat(" ", syn.Offset), syn.Msg)
	}

	return WrapExitError(ExitFailure, "invalid selector", err)
}
