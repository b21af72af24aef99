package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"sort"
	"text/template"

	"selector-generator/selector"
	"selector-generator/shape"
)

// Mode selects the form of the generated declarations.
type Mode string

const (
	// ModeConst emits a <Type>Fields string constant per type.
	ModeConst Mode = "const"
	// ModeMethod emits a value-receiver Selector() string method per type.
	ModeMethod Mode = "method"
)

// ConstSuffix is appended to the type name to form the constant name.
const ConstSuffix = "Fields"

// DefaultFilename is the name of the generated file when none is configured.
const DefaultFilename = "selectors_gen.go"

// ErrNoEntries is returned when there is nothing to generate.
var ErrNoEntries = errors.New("no types to generate")

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeConst, ModeMethod:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q (want %s or %s)", s, ModeConst, ModeMethod)
	}
}

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Filename is the name of the generated file.
	Filename string
	// Mode selects constants or methods.
	Mode Mode
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "selectors",
		OutputDir:        ".",
		Filename:         DefaultFilename,
		Mode:             ModeConst,
		GenerateComments: true,
	}
}

// Entry is one type to generate a selector for.
type Entry struct {
	// TypeName is the Go type name, e.g. FileList.
	TypeName string
	// Selector is the synthesized selector string.
	Selector string
}

// NewEntry synthesizes the selector of s for typeName.
func NewEntry(typeName string, s *shape.Shape) Entry {
	return Entry{TypeName: typeName, Selector: selector.Synthesize(s)}
}

// Name returns the declared identifier of the entry in const mode.
func (e Entry) Name() string {
	return e.TypeName + ConstSuffix
}

// Generator generates Go code from selector entries.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.Filename == "" {
		config.Filename = DefaultFilename
	}

	if config.Mode == "" {
		config.Mode = ModeConst
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "selectors_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// templateData holds all data needed for the selectors template.
type templateData struct {
	PackageName      string
	Mode             Mode
	GenerateComments bool
	Entries          []Entry
}

// Generate renders entries into a single Go file. Entries are sorted by type
// name so the output does not depend on input order.
func (g *Generator) Generate(entries []Entry) (*GeneratedFile, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	if !token.IsIdentifier(g.config.PackageName) {
		return nil, fmt.Errorf("invalid package name %q", g.config.PackageName)
	}

	if _, err := ParseMode(string(g.config.Mode)); err != nil {
		return nil, err
	}

	sorted := append([]Entry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].TypeName < sorted[j].TypeName })

	for i, e := range sorted {
		if !token.IsIdentifier(e.TypeName) || !token.IsExported(e.TypeName) {
			return nil, fmt.Errorf("invalid type name %q", e.TypeName)
		}

		if i > 0 && sorted[i-1].TypeName == e.TypeName {
			return nil, fmt.Errorf("duplicate type name %q", e.TypeName)
		}

		if err := selector.Validate(e.Selector); err != nil {
			return nil, fmt.Errorf("selector of %s: %w", e.TypeName, err)
		}
	}

	data := &templateData{
		PackageName:      g.config.PackageName,
		Mode:             g.config.Mode,
		GenerateComments: g.config.GenerateComments,
		Entries:          sorted,
	}

	var buf bytes.Buffer
	if err := selectorsTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: g.config.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: g.config.Filename,
		Content:  formatted,
	}, nil
}

// Template for the selectors file

var selectorsTemplate = template.Must(template.New("selectors").Parse(`// Code generated by selector-generator. DO NOT EDIT.

package {{.PackageName}}
{{if eq .Mode "const"}}
{{if .GenerateComments}}// Partial-response selectors, one per type, for the fields query parameter.
{{end}}const (
{{range .Entries}}	{{.Name}} = {{printf "%q" .Selector}}
{{end}})
{{else}}{{$comments := .GenerateComments}}{{range .Entries}}
{{if $comments}}// Selector returns the partial-response selector for {{.TypeName}}.
{{end}}func ({{.TypeName}}) Selector() string {
	return {{printf "%q" .Selector}}
}
{{end}}{{end}}`))
