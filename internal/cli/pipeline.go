package cli

import (
	"fmt"
	"log/slog"
	"sort"

	"selector-generator/internal/analyze"
	"selector-generator/internal/diagnostic"
	"selector-generator/internal/gen"
	"selector-generator/internal/match"
	"selector-generator/naming"
	"selector-generator/shape"
)

// maxSuggestions bounds the "did you mean" list of an unknown type.
const maxSuggestions = 3

// analysisRequest names one package and the types to describe in it.
type analysisRequest struct {
	Dir     string   // directory relative patterns are resolved in
	Pattern string   // package pattern, must match exactly one package
	Types   []string // type names; empty selects every struct type
	Naming  naming.Convention
	TagKey  string
}

// analysis is the outcome of loading a package and building its shapes.
type analysis struct {
	Package     *analyze.PackageInfo
	Graph       *analyze.TypeGraph
	IDs         []analyze.TypeID // requested types that exist, sorted by name
	Shapes      map[analyze.TypeID]*shape.Shape
	Diagnostics diagnostic.Diagnostics
}

// runAnalysis loads req.Pattern and builds the shape of every requested type.
// Load failures are returned as errors; schema problems are diagnostics.
func runAnalysis(req analysisRequest, logger *slog.Logger) (*analysis, error) {
	logger.Debug("loading package", "pattern", req.Pattern, "dir", req.Dir)

	graph, err := analyze.NewAnalyzer().WithDir(req.Dir).LoadPackages(req.Pattern)
	if err != nil {
		return nil, err
	}

	if len(graph.Packages) != 1 {
		return nil, fmt.Errorf("pattern %q matched %d packages, want exactly one", req.Pattern, len(graph.Packages))
	}

	res := &analysis{Graph: graph}
	for _, pkg := range graph.Packages {
		res.Package = pkg
	}

	logger.Debug("package loaded", "path", res.Package.Path, "types", len(res.Package.Types))

	res.IDs = selectTypes(res.Package, graph, req.Types, &res.Diagnostics)

	for _, d := range res.Diagnostics.Warnings {
		logger.Warn(d.Message, "type", d.Type, "code", d.Code)
	}

	for _, d := range res.Diagnostics.Infos {
		logger.Debug(d.Message, "type", d.Type, "code", d.Code)
	}

	builder := analyze.NewShapeBuilder(graph, req.Naming, req.TagKey)
	shapes, diags := builder.BuildAll(res.IDs)
	res.Shapes = shapes
	res.Diagnostics.Merge(diags)

	logger.Debug("shapes built", "ok", len(shapes), "errors", len(diags.Errors))

	return res, nil
}

// selectTypes resolves requested type names in pkg. Unknown and generic
// names are reported and left out. Without names every describable struct
// type is selected and the skipped ones are noted.
func selectTypes(pkg *analyze.PackageInfo, graph *analyze.TypeGraph, names []string, diags *diagnostic.Diagnostics) []analyze.TypeID {
	if len(names) == 0 {
		noteSkipped(pkg, graph, diags)
		return graph.Structs(pkg.Path)
	}

	var known []string
	for _, id := range pkg.Types {
		known = append(known, id.Name)
	}

	var ids []analyze.TypeID

	for _, name := range names {
		id := analyze.TypeID{PkgPath: pkg.Path, Name: name}
		display := analyze.DisplayName(id)

		info := graph.GetType(id)
		switch {
		case info == nil:
			diags.AddError(diagnostic.CodeTypeNotFound,
				fmt.Sprintf("type %s not found in %s", name, pkg.Path),
				display, "", match.Suggest(name, known, maxSuggestions)...)
		case info.Generic:
			diags.AddError(diagnostic.CodeGeneric,
				"generic types have no shape until instantiated",
				display, "")
		default:
			ids = append(ids, id)
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i].Name < ids[j].Name })

	return ids
}

// noteSkipped records the struct types of pkg that Structs leaves out.
// Self-describing types are a warning since their selector is only available
// at run time; generic types are expected and only noted.
func noteSkipped(pkg *analyze.PackageInfo, graph *analyze.TypeGraph, diags *diagnostic.Diagnostics) {
	for _, id := range pkg.Types {
		info := graph.GetType(id)
		if info == nil || info.Kind != analyze.TypeKindStruct {
			continue
		}

		switch {
		case info.Generic:
			diags.AddInfo(diagnostic.CodeGeneric, "skipped generic type", analyze.DisplayName(id), "")
		case info.Describes:
			diags.AddWarning(diagnostic.CodeUnsupported,
				"skipped type that provides its own shape at runtime; use selector.Of",
				analyze.DisplayName(id), "")
		}
	}
}

// entries returns the generator entries of every shape that was built.
func (a *analysis) entries() []gen.Entry {
	var out []gen.Entry

	for _, id := range a.IDs {
		if s, ok := a.Shapes[id]; ok {
			out = append(out, gen.NewEntry(id.Name, s))
		}
	}

	return out
}
