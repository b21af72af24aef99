package gen

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selector-generator/selector"
	"selector-generator/shape"
)

// driveEntries is deliberately out of order.
func driveEntries() []Entry {
	return []Entry{
		{
			TypeName: "FileList",
			Selector: "nextPageToken,files(id,mimeType,sharingUser/me,sharingUser/emailAddress)",
		},
		{
			TypeName: "UserInfo",
			Selector: "me,emailAddress",
		},
		{
			TypeName: "About",
			Selector: "user/me,user/emailAddress,storageQuota/limit,storageQuota/usage,exportFormats,modifiedTime,kind",
		},
	}
}

func newGolden(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestGenerator_Generate_Golden(t *testing.T) {
	tests := []struct {
		golden   string
		mode     Mode
		comments bool
	}{
		{"const", ModeConst, true},
		{"const_no_comments", ModeConst, false},
		{"method", ModeMethod, true},
	}

	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			g := NewGenerator(GeneratorConfig{
				PackageName:      "drive",
				Mode:             tt.mode,
				GenerateComments: tt.comments,
			})

			file, err := g.Generate(driveEntries())
			require.NoError(t, err)
			assert.Equal(t, DefaultFilename, file.Filename)

			newGolden(t).Assert(t, tt.golden, file.Content)
		})
	}
}

func TestGenerator_Generate_Deterministic(t *testing.T) {
	g := NewGenerator(GeneratorConfig{PackageName: "drive"})

	first, err := g.Generate(driveEntries())
	require.NoError(t, err)

	reversed := driveEntries()
	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	second, err := g.Generate(reversed)
	require.NoError(t, err)
	assert.Equal(t, string(first.Content), string(second.Content))
}

func TestGenerator_Generate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		mode    Mode
		entries []Entry
		errMsg  string
	}{
		{
			name:   "no entries",
			pkg:    "drive",
			errMsg: "no types to generate",
		},
		{
			name:    "invalid package",
			pkg:     "my-pkg",
			entries: []Entry{{TypeName: "File", Selector: "id"}},
			errMsg:  `invalid package name "my-pkg"`,
		},
		{
			name:    "unknown mode",
			pkg:     "drive",
			mode:    "var",
			entries: []Entry{{TypeName: "File", Selector: "id"}},
			errMsg:  `unknown mode "var"`,
		},
		{
			name:    "unexported type",
			pkg:     "drive",
			entries: []Entry{{TypeName: "file", Selector: "id"}},
			errMsg:  `invalid type name "file"`,
		},
		{
			name: "duplicate type",
			pkg:  "drive",
			entries: []Entry{
				{TypeName: "File", Selector: "id"},
				{TypeName: "File", Selector: "name"},
			},
			errMsg: `duplicate type name "File"`,
		},
		{
			name:    "malformed selector",
			pkg:     "drive",
			entries: []Entry{{TypeName: "File", Selector: "id,,name"}},
			errMsg:  "selector of File",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGenerator(GeneratorConfig{PackageName: tt.pkg, Mode: tt.mode})

			_, err := g.Generate(tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestGenerator_Generate_EmptySelectorIsValid(t *testing.T) {
	g := NewGenerator(GeneratorConfig{PackageName: "drive", GenerateComments: false})

	file, err := g.Generate([]Entry{{TypeName: "Empty", Selector: ""}})
	require.NoError(t, err)
	assert.Contains(t, string(file.Content), `EmptyFields = ""`)
}

func TestNewEntry(t *testing.T) {
	s := shape.Composite(
		shape.F("nextPageToken", shape.Leaf()),
		shape.F("files", shape.Collection(shape.Composite(
			shape.F("id", shape.Leaf()),
		))),
	)

	e := NewEntry("FileList", s)
	assert.Equal(t, "FileList", e.TypeName)
	assert.Equal(t, "FileListFields", e.Name())
	assert.Equal(t, "nextPageToken,files(id)", e.Selector)
	assert.NoError(t, selector.Validate(e.Selector))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("const")
	require.NoError(t, err)
	assert.Equal(t, ModeConst, m)

	m, err = ParseMode("method")
	require.NoError(t, err)
	assert.Equal(t, ModeMethod, m)

	_, err = ParseMode("Const")
	require.Error(t, err)
}

func TestDefaultGeneratorConfig(t *testing.T) {
	cfg := DefaultGeneratorConfig()
	assert.Equal(t, ModeConst, cfg.Mode)
	assert.Equal(t, DefaultFilename, cfg.Filename)
	assert.True(t, cfg.GenerateComments)
}
