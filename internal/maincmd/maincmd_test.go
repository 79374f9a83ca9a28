package maincmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/mna/mainer"
	"github.com/stretchr/testify/require"

	"github.com/slightknack/passerine/internal/maincmd"
)

func TestMainRequiresExactlyOnePath(t *testing.T) {
	var out, errOut bytes.Buffer
	c := maincmd.Cmd{}
	code := c.Main([]string{"passerine"}, mainer.Stdio{Stdout: &out, Stderr: &errOut})
	require.Equal(t, mainer.InvalidArgs, code)
}

func TestMainReportsUnimplementedCompileStage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.pn")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0o644))

	var out, errOut bytes.Buffer
	c := maincmd.Cmd{}
	code := c.Main([]string{"passerine", path}, mainer.Stdio{Stdout: &out, Stderr: &errOut})

	require.Equal(t, mainer.Failure, code)
	require.Contains(t, errOut.String(), "out of scope")
	require.Contains(t, out.String(), "expanded AST")
	require.Contains(t, out.String(), "symbol x")
}

func TestMainReportsMissingFile(t *testing.T) {
	var out, errOut bytes.Buffer
	c := maincmd.Cmd{}
	code := c.Main([]string{"passerine", "/does/not/exist.pn"}, mainer.Stdio{Stdout: &out, Stderr: &errOut})

	require.Equal(t, mainer.Failure, code)
	require.Contains(t, errOut.String(), "reading")
}
