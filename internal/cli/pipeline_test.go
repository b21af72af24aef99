package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selector-generator/internal/analyze"
	"selector-generator/internal/diagnostic"
)

const schemasPkg = "selector-generator/internal/analyze/testdata/schemas"

func TestSelectTypes_AllNotesSkipped(t *testing.T) {
	graph, err := analyze.NewAnalyzer().LoadPackages(schemasDir)
	require.NoError(t, err)

	pkg := graph.Packages[schemasPkg]
	require.NotNil(t, pkg)

	var diags diagnostic.Diagnostics
	ids := selectTypes(pkg, graph, nil, &diags)

	assert.Contains(t, ids, analyze.TypeID{PkgPath: schemasPkg, Name: "Resource"})
	assert.NotContains(t, ids, analyze.TypeID{PkgPath: schemasPkg, Name: "Self"})
	assert.NotContains(t, ids, analyze.TypeID{PkgPath: schemasPkg, Name: "Page"})
	assert.False(t, diags.HasErrors())

	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "schemas.Self", diags.Warnings[0].Type)
	assert.Equal(t, diagnostic.CodeUnsupported, diags.Warnings[0].Code)

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "schemas.Page", diags.Infos[0].Type)
	assert.Equal(t, diagnostic.CodeGeneric, diags.Infos[0].Code)
}

func TestSelectTypes_Named(t *testing.T) {
	graph, err := analyze.NewAnalyzer().LoadPackages(schemasDir)
	require.NoError(t, err)

	var diags diagnostic.Diagnostics
	ids := selectTypes(graph.Packages[schemasPkg], graph, []string{"Resource", "Base", "Resourc"}, &diags)

	assert.Equal(t, []analyze.TypeID{
		{PkgPath: schemasPkg, Name: "Base"},
		{PkgPath: schemasPkg, Name: "Resource"},
	}, ids)

	require.Len(t, diags.Errors, 1)
	assert.Equal(t, diagnostic.CodeTypeNotFound, diags.Errors[0].Code)
	assert.Equal(t, []string{"Resource"}, diags.Errors[0].Suggestions[:1])
	assert.Empty(t, diags.Warnings)
}
