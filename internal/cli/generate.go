package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"selector-generator/internal/config"
	"selector-generator/internal/gen"
)

// generation is the outcome of one config-driven generator run. File is nil
// when the analysis reported errors.
type generation struct {
	Analysis   *analysis
	File       *gen.GeneratedFile
	OutputDir  string
	OutputPath string
}

// loadConfig reads the configuration at path (or the environment's default),
// applies environment overrides and validates the result.
func loadConfig(path string, env config.Env) (*config.Config, error) {
	path = firstNonEmpty(path, env.ConfigPath, config.DefaultPath)

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	env.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// generate analyzes the configured package and renders the selectors file
// without writing it.
func generate(cfg *config.Config, logger *slog.Logger) (*generation, error) {
	mode, err := gen.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	res, err := runAnalysis(analysisRequest{
		Dir:     cfg.Dir,
		Pattern: cfg.Source,
		Types:   cfg.Types,
		Naming:  cfg.NamingConvention(),
		TagKey:  cfg.TagKey,
	}, logger)
	if err != nil {
		return nil, err
	}

	g := &generation{Analysis: res}
	if res.Diagnostics.HasErrors() {
		return g, nil
	}

	out := cfg.OutputPath(res.Package.Dir)
	if abs, err := filepath.Abs(out); err == nil {
		out = abs
	}

	pkgName := firstNonEmpty(cfg.Package, res.Package.Name)

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.PackageName = pkgName
	genCfg.OutputDir = filepath.Dir(out)
	genCfg.Filename = filepath.Base(out)
	genCfg.Mode = mode
	genCfg.GenerateComments = cfg.GenerateComments()

	generator := gen.NewGenerator(genCfg)

	file, err := generator.Generate(res.entries())
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", out, err)
	}

	g.File = file
	g.OutputDir = filepath.Dir(out)
	g.OutputPath = out

	logger.Debug("selectors rendered", "package", pkgName, "types", len(res.Shapes), "output", out)

	return g, nil
}
