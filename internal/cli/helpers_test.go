package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const (
	drivePkg   = "selector-generator/examples/drive"
	schemasDir = "../analyze/testdata/schemas"
)

// execute runs cmd with args and returns its stdout and stderr.
func execute(cmd *cobra.Command, args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	// A nil slice would make cobra fall back to the test binary's arguments.
	if args == nil {
		args = []string{}
	}

	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// writeConfig writes a config file into a fresh directory inside the module,
// so package patterns in it resolve against this module.
func writeConfig(t *testing.T, body string) (string, string) {
	t.Helper()

	require.NoError(t, os.MkdirAll("testdata", 0o755))

	dir, err := os.MkdirTemp("testdata", "run-")
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = os.RemoveAll(dir)
	})

	path := filepath.Join(dir, "selectorgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return dir, path
}

// committedDriveSelectors returns the checked-in generated file of the drive example.
func committedDriveSelectors(t *testing.T) string {
	t.Helper()

	content, err := os.ReadFile(filepath.Join("..", "..", "examples", "drive", "selectors_gen.go"))
	require.NoError(t, err)

	return string(content)
}
