package load_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	load "github.com/toejough/eventmon/eventgen/run/2_load"
)

func TestPackageDST_IncludesTestFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, dir, "widget.go", "package widgets\n\ntype Widget struct{}\n")
	writeFile(t, dir, "widget_test.go", "package widgets\n\ntype fixture struct{}\n")
	writeFile(t, dir, "notes.txt", "not go")

	files, fset, err := load.PackageDST(dir)
	require.NoError(t, err)
	assert.NotNil(t, fset)
	assert.Len(t, files, 2)
}

func TestPackageDST_SkipsUnparseableFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	writeFile(t, dir, "good.go", "package widgets\n")
	writeFile(t, dir, "bad.go", "package widgets\n\nfunc {")
	writeFile(t, dir, "headless.go", "func Orphan() {}\n")

	files, _, err := load.PackageDST(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "widgets", files[0].Name.Name)
}

func TestPackageDST_Errors(t *testing.T) {
	t.Parallel()

	empty := t.TempDir()

	_, _, err := load.PackageDST(empty)
	require.ErrorContains(t, err, "no .go files")

	broken := t.TempDir()
	writeFile(t, broken, "bad.go", "func {")

	_, _, err = load.PackageDST(broken)
	require.ErrorContains(t, err, "failed to parse any .go files")

	_, _, err = load.PackageDST(filepath.Join(empty, "missing"))
	require.ErrorContains(t, err, "failed to read directory")
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600)
	require.NoError(t, err)
}
