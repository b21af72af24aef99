package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// PrintResult maps type names to their selectors.
type PrintResult struct {
	Package   string            `json:"package"`
	Selectors map[string]string `json:"selectors"`
}

// NewPrintCommand creates the print command.
func NewPrintCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &sourceOptions{}

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the selector of each struct type in a package",
		Long: `Print the partial-response selector of struct types in a Go package.

Each line holds a type name and its selector, separated by a tab.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPrint(rootOpts, opts, cmd)
		},
	}

	opts.register(cmd)

	return cmd
}

func runPrint(rootOpts *RootOptions, opts *sourceOptions, cmd *cobra.Command) error {
	formatter := rootOpts.formatter(cmd)

	req, err := opts.request(rootOpts.Env)
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid flags", err)
	}

	res, err := runAnalysis(req, rootOpts.logger())
	if err != nil {
		_ = formatter.Error(ErrCodeLoad, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading package", err)
	}

	if res.Diagnostics.HasErrors() {
		_ = formatter.Diagnostics(&res.Diagnostics)
		return NewExitError(ExitFailure, fmt.Sprintf("%d type(s) could not be described", len(res.Diagnostics.Errors)))
	}

	entries := res.entries()

	if formatter.Format == "json" {
		result := PrintResult{Package: res.Package.Path, Selectors: make(map[string]string, len(entries))}
		for _, e := range entries {
			result.Selectors[e.TypeName] = e.Selector
		}

		return formatter.Success(result)
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 4, 1, '\t', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.TypeName, e.Selector)
	}

	return tw.Flush()
}
