package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint_Text(t *testing.T) {
	cmd := NewPrintCommand(&RootOptions{Format: "text"})

	out, _, err := execute(cmd, "-p", drivePkg, "-t", "FileList", "-t", "UserInfo")
	require.NoError(t, err)

	assert.Contains(t, out, "FileList\t")
	assert.Contains(t, out, "nextPageToken,files(id,mimeType,sharingUser/me,sharingUser/emailAddress)\n")
	assert.Contains(t, out, "me,emailAddress\n")
	assert.NotContains(t, out, "About")
}

func TestPrint_JSON(t *testing.T) {
	cmd := NewPrintCommand(&RootOptions{Format: "json"})

	out, _, err := execute(cmd, "-p", drivePkg)
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   PrintResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, drivePkg, resp.Data.Package)
	assert.Len(t, resp.Data.Selectors, 9)
	assert.Equal(t,
		"permissions(id,role,emailAddress,additionalRoles,deleted,permissionDetails(inherited))",
		resp.Data.Selectors["PermissionList"])
}

func TestPrint_Naming(t *testing.T) {
	cmd := NewPrintCommand(&RootOptions{Format: "text"})

	out, _, err := execute(cmd, "-p", drivePkg, "-t", "File", "--naming", "snake")
	require.NoError(t, err)
	assert.Contains(t, out, "id,mime_type,sharing_user/me,sharing_user/email_address")
}

func TestPrint_UnknownType(t *testing.T) {
	cmd := NewPrintCommand(&RootOptions{Format: "text"})

	_, errOut, err := execute(cmd, "-p", drivePkg, "-t", "FileLst")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, errOut, "TYPE_NOT_FOUND")
	assert.Contains(t, errOut, "did you mean FileList")
}

func TestPrint_SchemaErrors(t *testing.T) {
	cmd := NewPrintCommand(&RootOptions{Format: "text"})

	_, errOut, err := execute(cmd, "-p", schemasDir, "-t", "Node", "-t", "Hook", "-t", "Page")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, errOut, "[schemas.Node] children: [SCHEMA_CYCLE]")
	assert.Contains(t, errOut, "[schemas.Hook] callback: [SCHEMA_UNSUPPORTED]")
	assert.Contains(t, errOut, "[schemas.Page]: [TYPE_GENERIC]")
}

func TestPrint_InvalidNaming(t *testing.T) {
	cmd := NewPrintCommand(&RootOptions{Format: "text"})

	_, errOut, err := execute(cmd, "-p", drivePkg, "--naming", "screaming")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "E002")
}

func TestPrint_LoadError(t *testing.T) {
	cmd := NewPrintCommand(&RootOptions{Format: "text"})

	_, errOut, err := execute(cmd, "-p", "./does-not-exist")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "E003")
}
