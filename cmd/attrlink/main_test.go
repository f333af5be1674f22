package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleLinks = "../../examples/users/links.yaml"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestCheck_ExampleFile(t *testing.T) {
	out, err := run(t, "check", "--file", exampleLinks, "--packages", "attr-linker/examples/users")
	require.NoError(t, err, out)
	assert.Contains(t, out, "5 links, 0 errors, 0 warnings")
}

func TestCheck_ReportsErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
links:
  - {type: users.Group, method: dictionary, source: Metta, target: title}
  - {type: users.Grup, method: dictionary, source: Meta, target: title}
`), 0o600))

	out, err := run(t, "check", "-f", path, "-p", "attr-linker/examples/users")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 2 errors")
	assert.Contains(t, out, "error: [users.Group] Metta: [unknown_source]")
	assert.Contains(t, out, "did you mean Meta?")
	assert.Contains(t, out, "did you mean users.Group?")
}

func TestCheck_NeedsPackages(t *testing.T) {
	_, err := run(t, "check", "--file", exampleLinks)
	require.EqualError(t, err, "no packages given, use --packages")
}

func TestDump(t *testing.T) {
	out, err := run(t, "dump", "--file", exampleLinks)
	require.NoError(t, err)
	assert.Contains(t, out, "method: multiDictionary")
	assert.Contains(t, out, "{leader: 0, newest: -1}")

	out, err = run(t, "dump", "--file", exampleLinks, "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "linkfile.File")
	assert.Contains(t, out, `Template: (string) (len=19) "{title} ({created})"`)
}

func TestDump_FileFromEnv(t *testing.T) {
	t.Setenv("ATTRLINK_FILE", exampleLinks)

	out, err := run(t, "dump")
	require.NoError(t, err)
	assert.Contains(t, out, "type: users.Group")
}

func TestDump_Config(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "attrlink.yaml")
	abs, err := filepath.Abs(exampleLinks)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfg, []byte("file: "+abs+"\nraw: true\n"), 0o600))

	out, err := run(t, "dump", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "linkfile.File")
}

func TestDump_MissingFile(t *testing.T) {
	_, err := run(t, "dump", "--file", filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
