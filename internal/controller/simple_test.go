package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "relint.dev/pkg/relint/internal/model"
)

func newCaptureUI(t *testing.T) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewUI(cmd), out
}

func testLinters(t *testing.T) []m.Linter {
	t.Helper()

	include, err := m.CompilePatterns([]string{"*.py"})
	require.NoError(t, err)

	exclude, err := m.CompilePatterns([]string{"third_party/*"})
	require.NoError(t, err)

	return []m.Linter{
		{Name: "FLAKE8", IncludePatterns: include, ExcludePatterns: exclude},
		{Name: "HEADER", BypassMatchedFileFilter: true},
	}
}

func TestDisplaySelection(t *testing.T) {
	ui, out := newCaptureUI(t)

	ui.DisplaySelection(testLinters(t))

	output := out.String()
	assert.Contains(t, output, "FLAKE8")
	assert.Contains(t, output, "*.py")
	assert.Contains(t, output, "third_party/*")
	assert.Contains(t, output, "HEADER")
	assert.Contains(t, output, "true")
}

func TestDisplayPlan(t *testing.T) {
	ui, out := newCaptureUI(t)

	files := []m.AbsPath{"/repo/a.py", "/repo/b.txt"}
	ui.DisplayPlan(testLinters(t), files)

	output := out.String()
	assert.Contains(t, output, "FILES")
	assert.Contains(t, output, "Changed files in scope: 2")
}

func TestDisplayFiles(t *testing.T) {
	ui, out := newCaptureUI(t)

	ui.DisplayFiles([]m.AbsPath{"/repo/a.py", "/repo/b.txt"})

	assert.Equal(t, "/repo/a.py\n/repo/b.txt\n", out.String())
}
