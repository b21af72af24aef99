package cli

import (
	"github.com/spf13/cobra"

	"selector-generator/internal/config"
	"selector-generator/naming"
)

// sourceOptions are the package selection flags shared by print and analyze.
type sourceOptions struct {
	Package string
	Types   []string
	Naming  string
	TagKey  string
}

func (o *sourceOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Package, "package", "p", ".", "package pattern to analyze")
	cmd.Flags().StringSliceVarP(&o.Types, "type", "t", nil, "type names to describe (default: every struct type)")
	cmd.Flags().StringVar(&o.Naming, "naming", "", "naming convention for untagged fields (as-is|camel|pascal|snake|kebab)")
	cmd.Flags().StringVar(&o.TagKey, "tag-key", "", "struct tag holding wire names (default json)")
}

// request resolves the flags against the environment. Flags win over the
// environment, which wins over the defaults.
func (o *sourceOptions) request(env config.Env) (analysisRequest, error) {
	conv := naming.Camel

	name := firstNonEmpty(o.Naming, env.Naming)
	if name != "" {
		parsed, err := naming.Parse(name)
		if err != nil {
			return analysisRequest{}, err
		}

		conv = parsed
	}

	return analysisRequest{
		Pattern: o.Package,
		Types:   o.Types,
		Naming:  conv,
		TagKey:  firstNonEmpty(o.TagKey, env.TagKey),
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
