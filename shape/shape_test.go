package shape

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userInfo() *Shape {
	return Composite(
		F("me", Leaf()),
		F("emailAddress", Leaf()),
	)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Leaf", KindLeaf.String())
	assert.Equal(t, "Optional", KindOptional.String())
	assert.Equal(t, "Collection", KindCollection.String())
	assert.Equal(t, "Map", KindMap.String())
	assert.Equal(t, "Composite", KindComposite.String())
	assert.Equal(t, "Flatten", KindFlatten.String())
	assert.Equal(t, "Invalid", KindInvalid.String())
	assert.Equal(t, "Kind(99)", Kind(99).String())
	assert.Equal(t, 7, KindTotal)
}

func TestKind_Classes(t *testing.T) {
	assert.True(t, KindOptional.IsWrapper())
	assert.True(t, KindFlatten.IsWrapper())
	assert.False(t, KindCollection.IsWrapper())
}

func TestShape_String(t *testing.T) {
	s := Composite(
		F("id", Leaf()),
		F("tags", Collection(Leaf())),
		F("owner", Optional(userInfo())),
		F("labels", Map()),
		F("page", Flatten(Composite(F("token", Leaf())))),
	)

	assert.Equal(t,
		"{id:leaf tags:[]leaf owner:?{me:leaf emailAddress:leaf} labels:map page:...{token:leaf}}",
		s.String())

	var nilShape *Shape
	assert.Equal(t, "<nil>", nilShape.String())
}

func TestShape_Unwrap(t *testing.T) {
	inner := userInfo()
	assert.Same(t, inner, Optional(Flatten(Optional(inner))).Unwrap())
	assert.Nil(t, Optional(nil).Unwrap())

	c := Collection(inner)
	assert.Same(t, c, c.Unwrap())
}

func TestShape_IsFlatten(t *testing.T) {
	assert.True(t, Flatten(userInfo()).IsFlatten())
	assert.True(t, Optional(Flatten(userInfo())).IsFlatten())
	assert.False(t, userInfo().IsFlatten())
	assert.False(t, Flatten(userInfo()).Elem.IsFlatten())

	var nilShape *Shape
	assert.False(t, nilShape.IsFlatten())
}

func TestMountPath(t *testing.T) {
	assert.Equal(t, "a", MountPath("", F("a", Leaf())))
	assert.Equal(t, "u/a", MountPath("u", F("a", Leaf())))
	assert.Equal(t, "u", MountPath("u", F("payload", Flatten(userInfo()))))
	assert.Equal(t, "", MountPath("", F("payload", Flatten(userInfo()))))
}

func TestShape_Field(t *testing.T) {
	u := userInfo()
	require.NotNil(t, u.Field("me"))
	assert.Equal(t, KindLeaf, u.Field("me").Kind)
	assert.Nil(t, u.Field("missing"))
	assert.Nil(t, Leaf().Field("me"))
}

func TestDump(t *testing.T) {
	s := Composite(
		F("nextPageToken", Leaf()),
		F("files", Collection(Composite(
			F("id", Leaf()),
			F("sharingUser", Optional(userInfo())),
		))),
	)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, "FileList", s))

	expected := `FileList: composite
  nextPageToken: leaf
  files: collection composite
    id: leaf
    sharingUser: optional composite
      me: leaf
      emailAddress: leaf
`
	assert.Equal(t, expected, buf.String())
}
