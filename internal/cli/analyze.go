package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"selector-generator/shape"
)

// analyzeOptions extends the source flags with the raw dump switch.
type analyzeOptions struct {
	sourceOptions

	Raw bool
}

// rawDump prints analyzer type info without pointer addresses so the output is stable.
var rawDump = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
	MaxDepth:                4,
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print the field shapes selectors are synthesized from",
		Long: `Print the field shape tree of struct types in a Go package.

With --raw, the analyzer's type information is dumped instead.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(rootOpts, opts, cmd)
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "dump the analyzer's type information")

	return cmd
}

func runAnalyze(rootOpts *RootOptions, opts *analyzeOptions, cmd *cobra.Command) error {
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

	switch {
	case opts.Raw:
		for _, id := range res.IDs {
			fmt.Fprintf(formatter.Writer, "%s = ", id.Name)
			rawDump.Fdump(formatter.Writer, res.Graph.GetType(id))
		}

	case formatter.Format == "json":
		// Diagnostics replace the payload in JSON output.
		if res.Diagnostics.HasErrors() {
			break
		}

		shapes := make(map[string]string, len(res.Shapes))
		for id, s := range res.Shapes {
			shapes[id.Name] = s.String()
		}

		if err := formatter.Success(shapes); err != nil {
			return err
		}

	default:
		for _, id := range res.IDs {
			s, ok := res.Shapes[id]
			if !ok {
				continue
			}

			if err := shape.Dump(formatter.Writer, id.Name, s); err != nil {
				return err
			}
		}
	}

	if res.Diagnostics.HasErrors() {
		_ = formatter.Diagnostics(&res.Diagnostics)
		return NewExitError(ExitFailure, fmt.Sprintf("%d type(s) could not be described", len(res.Diagnostics.Errors)))
	}

	return nil
}
