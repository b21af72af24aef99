package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"ID", []string{"ID"}},
		{"MimeType", []string{"Mime", "Type"}},
		{"nextPageToken", []string{"next", "Page", "Token"}},
		{"OrderID", []string{"Order", "ID"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"IDs", []string{"IDs"}},
		{"PermissionIDs", []string{"Permission", "IDs"}},
		{"URLsByID", []string{"URLs", "By", "ID"}},
		{"HTTPSession", []string{"HTTP", "Session"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"Md5Checksum", []string{"Md5", "Checksum"}},
		{"md5_checksum", []string{"md5", "checksum"}},
		{"email-address", []string{"email", "address"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestConvention_Apply(t *testing.T) {
	tests := []struct {
		conv     Convention
		input    string
		expected string
	}{
		{AsIs, "MimeType", "MimeType"},
		{Camel, "MimeType", "mimeType"},
		{Camel, "ID", "id"},
		{Camel, "DriveID", "driveId"},
		{Camel, "URLPath", "urlPath"},
		{Camel, "IDs", "ids"},
		{Camel, "PermissionIDs", "permissionIds"},
		{Camel, "URLs", "urls"},
		{Camel, "Md5Checksum", "md5Checksum"},
		{Camel, "NextPageToken", "nextPageToken"},
		{Camel, "me", "me"},
		{Pascal, "mimeType", "MimeType"},
		{Pascal, "HTTPServer", "HttpServer"},
		{Snake, "EmailAddress", "email_address"},
		{Snake, "UserID", "user_id"},
		{Snake, "PermissionIDs", "permission_ids"},
		{Kebab, "EmailAddress", "email-address"},
	}

	for _, tt := range tests {
		t.Run(tt.conv.String()+"/"+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.conv.Apply(tt.input))
		})
	}
}

func TestParse(t *testing.T) {
	for _, c := range []Convention{AsIs, Camel, Pascal, Snake, Kebab} {
		got, err := Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := Parse("CAMEL")
	require.NoError(t, err)
	assert.Equal(t, Camel, got)

	_, err = Parse("screaming")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "screaming")
}

func TestConvention_String_OutOfRange(t *testing.T) {
	assert.Equal(t, "Convention(42)", Convention(42).String())
}
