package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"selector-generator/internal/config"
	"selector-generator/internal/gen"
)

// DefaultDebounce is how long gen --watch waits for a burst of file events to settle.
const DefaultDebounce = 200 * time.Millisecond

// GenOptions holds options for the gen command.
type GenOptions struct {
	*RootOptions

	Config   string
	Watch    bool
	DryRun   bool
	Debounce time.Duration
}

// GenResult describes a written selectors file.
type GenResult struct {
	File  string   `json:"file"`
	Types []string `json:"types"`
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the selectors file described by a config",
		Long: `Generate a Go file holding the selector of every configured type.

The config defaults to selectorgen.yaml (or $SELECTORGEN_CONFIG). With --watch,
the file is regenerated whenever a Go file of the analyzed package changes.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "path to config file")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "regenerate on source changes until interrupted")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print the generated file instead of writing it")
	cmd.Flags().DurationVar(&opts.Debounce, "debounce", DefaultDebounce, "quiet period before regenerating in watch mode")

	return cmd
}

func runGen(opts *GenOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	cfg, err := loadConfig(opts.Config, opts.Env)
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading config", err)
	}

	if !opts.Watch {
		_, err := genOnce(opts, cfg, formatter)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchAndGenerate(ctx, opts, cfg, formatter)
}

// genOnce runs the generator and writes its output. The generation is
// returned even when it reported diagnostics.
func genOnce(opts *GenOptions, cfg *config.Config, formatter *OutputFormatter) (*generation, error) {
	logger := opts.logger()

	g, err := generate(cfg, logger)
	if err != nil {
		_ = formatter.Error(ErrCodeLoad, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "generating selectors", err)
	}

	if g.File == nil {
		_ = formatter.Diagnostics(&g.Analysis.Diagnostics)
		return g, NewExitError(ExitFailure, fmt.Sprintf("%d type(s) could not be described", len(g.Analysis.Diagnostics.Errors)))
	}

	if opts.DryRun {
		_, err := formatter.Writer.Write(g.File.Content)
		return g, err
	}

	stale, err := gen.Stale([]gen.GeneratedFile{*g.File}, g.OutputDir)
	if err != nil {
		return g, WrapExitError(ExitCommandError, "reading existing output", err)
	}

	result := GenResult{File: g.OutputPath}
	for _, e := range g.Analysis.entries() {
		result.Types = append(result.Types, e.TypeName)
	}

	if len(stale) == 0 {
		logger.Info("selectors up to date", "file", g.OutputPath)
	} else {
		if err := gen.WriteFiles([]gen.GeneratedFile{*g.File}, g.OutputDir); err != nil {
			_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return g, WrapExitError(ExitCommandError, "writing selectors", err)
		}

		logger.Info("selectors generated", "file", g.OutputPath, "types", len(result.Types))
	}

	if formatter.Format == "json" {
		return g, formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ %s (%d types)\n", relPath(g.OutputPath), len(result.Types))

	return g, nil
}

// watchAndGenerate generates once, then again after every settled burst of
// changes to the package's Go files, until ctx is done.
func watchAndGenerate(ctx context.Context, opts *GenOptions, cfg *config.Config, formatter *OutputFormatter) error {
	logger := opts.logger()

	g, err := genOnce(opts, cfg, formatter)
	if g == nil {
		// Without a loaded package there is no directory to watch.
		return err
	}

	if err != nil {
		logger.Warn("initial generation failed", "err", err)
	}

	ignore := []string{g.OutputPath}
	if g.OutputPath == "" {
		ignore = []string{cfg.OutputPath(g.Analysis.Package.Dir)}
	}

	w := &watcher{
		dirs:     []string{g.Analysis.Package.Dir},
		ignore:   ignore,
		debounce: opts.Debounce,
		logger:   logger,
		onChange: func() error {
			_, err := genOnce(opts, cfg, formatter)
			return err
		},
	}

	logger.Info("watching for changes", "dir", g.Analysis.Package.Dir)

	return w.run(ctx)
}

// relPath shortens p relative to the working directory when possible.
func relPath(p string) string {
	wd, err := os.Getwd()
	if err != nil {
		return p
	}

	rel, err := filepath.Rel(wd, p)
	if err != nil {
		return p
	}

	return rel
}
