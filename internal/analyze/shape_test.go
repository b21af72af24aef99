package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selector-generator/internal/diagnostic"
	"selector-generator/naming"
	"selector-generator/selector"
	"selector-generator/shape"
)

const schemasPkg = "selector-generator/internal/analyze/testdata/schemas"

func loadBuilder(t *testing.T, pattern string) (*TypeGraph, *ShapeBuilder) {
	t.Helper()

	graph, err := NewAnalyzer().LoadPackages(pattern)
	require.NoError(t, err)

	return graph, NewShapeBuilder(graph, naming.Camel, "")
}

func TestShapeBuilder_Drive(t *testing.T) {
	_, b := loadBuilder(t, drivePkg)

	tests := map[string]string{
		"FileList":       "nextPageToken,files(id,mimeType,sharingUser/me,sharingUser/emailAddress)",
		"FilePage":       "nextPageToken,files(id,mimeType,sharingUser/me,sharingUser/emailAddress)",
		"UserInfo":       "me,emailAddress",
		"About":          "user/me,user/emailAddress,storageQuota/limit,storageQuota/usage,exportFormats,modifiedTime,kind",
		"PermissionList": "permissions(id,role,emailAddress,additionalRoles,deleted,permissionDetails(inherited))",
	}

	for name, expected := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := b.Build(TypeID{PkgPath: drivePkg, Name: name})
			require.NoError(t, err)
			assert.Equal(t, expected, selector.Synthesize(s))
		})
	}
}

func TestShapeBuilder_FlattenEmbedded(t *testing.T) {
	_, b := loadBuilder(t, drivePkg)

	s, err := b.Build(TypeID{PkgPath: drivePkg, Name: "FilePage"})
	require.NoError(t, err)
	require.Len(t, s.Fields, 2)
	assert.Equal(t, shape.KindFlatten, s.Fields[1].Shape.Kind)
}

func TestShapeBuilder_EdgeCases(t *testing.T) {
	_, b := loadBuilder(t, "./testdata/schemas")

	s, err := b.Build(TypeID{PkgPath: schemasPkg, Name: "Resource"})
	require.NoError(t, err)
	assert.Equal(t,
		"etag,kind,id,status,tags,raw,blob,created,attrs,matrix,parent/etag,extra",
		selector.Synthesize(s))

	assert.Equal(t, shape.KindCollection, s.Field("tags").Kind)
	assert.Equal(t, shape.KindLeaf, s.Field("raw").Kind)
	assert.Equal(t, shape.KindLeaf, s.Field("blob").Kind)
	assert.Equal(t, shape.KindOptional, s.Field("created").Kind)
	assert.Equal(t, shape.KindMap, s.Field("attrs").Kind)
	assert.Equal(t, shape.KindLeaf, s.Field("extra").Kind)
}

func TestShapeBuilder_Errors(t *testing.T) {
	_, b := loadBuilder(t, "./testdata/schemas")

	tests := []struct {
		name     string
		sentinel error
		path     string
	}{
		{"Node", shape.ErrCycle, "children"},
		{"Hook", shape.ErrUnsupportedType, "callback"},
		{"Number", shape.ErrUnsupportedType, "value"},
		{"Page", shape.ErrNotStruct, ""},
		{"Tags", shape.ErrNotStruct, ""},
		{"Self", shape.ErrUnsupportedType, ""},
		{"UsesSelf", shape.ErrUnsupportedType, "self"},
		{"BadFlatten", shape.ErrFlattenNotComposite, "name"},
		{"Twins", shape.ErrDuplicateName, "etag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Build(TypeID{PkgPath: schemasPkg, Name: tt.name})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			se, ok := err.(*shape.SchemaError)
			require.True(t, ok)
			assert.Equal(t, tt.path, se.Path)
			assert.Equal(t, "schemas."+tt.name, se.Type)
		})
	}

	_, err := b.Build(TypeID{PkgPath: schemasPkg, Name: "Missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestShapeBuilder_MismatchedSelectorShapeMethod(t *testing.T) {
	graph, b := loadBuilder(t, "./testdata/schemas")

	assert.True(t, graph.GetType(TypeID{PkgPath: schemasPkg, Name: "Self"}).Describes)
	assert.False(t, graph.GetType(TypeID{PkgPath: schemasPkg, Name: "Lookalike"}).Describes)

	s, err := b.Build(TypeID{PkgPath: schemasPkg, Name: "UsesLookalike"})
	require.NoError(t, err)
	assert.Equal(t, "lookalike/name", selector.Synthesize(s))
}

func TestShapeBuilder_ImportedStruct(t *testing.T) {
	_, b := loadBuilder(t, "./testdata/schemas")

	s, err := b.Build(TypeID{PkgPath: schemasPkg, Name: "Shared"})
	require.NoError(t, err)
	assert.Equal(t, "owner/me,owner/emailAddress", selector.Synthesize(s))
}

func TestShapeBuilder_FlattenShadowing(t *testing.T) {
	_, b := loadBuilder(t, "./testdata/schemas")

	s, err := b.Build(TypeID{PkgPath: schemasPkg, Name: "Shadowed"})
	require.NoError(t, err)
	assert.Equal(t, "id,etag", selector.Synthesize(s))
}

func TestShapeBuilder_BuildAll(t *testing.T) {
	graph, b := loadBuilder(t, "./testdata/schemas")

	shapes, diags := b.BuildAll(graph.Structs(schemasPkg))
	assert.Contains(t, shapes, TypeID{PkgPath: schemasPkg, Name: "Resource"})
	assert.Contains(t, shapes, TypeID{PkgPath: schemasPkg, Name: "Base"})
	assert.NotContains(t, shapes, TypeID{PkgPath: schemasPkg, Name: "Node"})
	assert.NotContains(t, shapes, TypeID{PkgPath: schemasPkg, Name: "Page"})

	require.True(t, diags.HasErrors())

	codes := map[string]string{}
	for _, d := range diags.Errors {
		codes[d.Type] = d.Code
	}

	assert.Equal(t, diagnostic.CodeCycle, codes["schemas.Node"])
	assert.Equal(t, diagnostic.CodeUnsupported, codes["schemas.Hook"])
	assert.Equal(t, diagnostic.CodeUnsupported, codes["schemas.Number"])
	assert.Equal(t, diagnostic.CodeInvalid, codes["schemas.BadFlatten"])
}

func TestShapeBuilder_Naming(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages(drivePkg)
	require.NoError(t, err)

	b := NewShapeBuilder(graph, naming.Snake, "json")

	s, err := b.Build(TypeID{PkgPath: drivePkg, Name: "FileList"})
	require.NoError(t, err)
	assert.Equal(t,
		"next_page_token,files(id,mime_type,sharing_user/me,sharing_user/email_address)",
		selector.Synthesize(s))
}
