// Package output writes generated code, or checks that it is up to date.
package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/go-reorder"
)

// Reader interface for reading previously generated code.
type Reader interface {
	ReadFile(name string) ([]byte, error)
}

// Writer interface for writing generated code.
type Writer interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// CheckGeneratedCode compares code with the file WriteGeneratedCode would write and returns
// ErrStale, after printing a unified diff to out, when they differ or the file is missing.
func CheckGeneratedCode(
	code string, genName string, pkgName string, getEnv func(string) string, fileReader Reader, out io.Writer,
) error {
	filename := Filename(genName, pkgName, getEnv("GOFILE"))
	wanted := reordered(code, filename, out)

	existing, err := fileReader.ReadFile(filename)
	if err != nil {
		existing = nil
	}

	if string(existing) == wanted {
		_, _ = fmt.Fprintf(out, "%s is up to date.\n", filename)

		return nil
	}

	_, _ = fmt.Fprint(out, Diff(filename, string(existing), wanted))

	return fmt.Errorf("%w: %s", ErrStale, filename)
}

// Diff returns a unified diff from current to wanted, both named after filename, or "" when
// they are equal.
func Diff(filename, current, wanted string) string {
	if current == wanted {
		return ""
	}

	return textdiff.Unified(filename+" (current)", filename+" (wanted)", current, wanted)
}

// Filename returns the name of the generated file: generated_<genName>.go, with a _test suffix
// when generating for a test package or from a test file.
func Filename(genName, pkgName, goFile string) string {
	base := strings.TrimSuffix(genName, ".go")

	isTestFile := strings.HasSuffix(pkgName, "_test") || strings.HasSuffix(goFile, "_test.go")
	if isTestFile && !strings.HasSuffix(base, "_test") {
		base += "_test"
	}

	return "generated_" + base + ".go"
}

// Reorder puts the declarations of a Go source file in the order eventmon keeps its code in.
func Reorder(code string) (string, error) {
	result, err := reorder.Source(code)
	if err != nil {
		return "", fmt.Errorf("reordering declarations: %w", err)
	}

	return result, nil
}

// WriteGeneratedCode writes the generated code to the file named by Filename.
func WriteGeneratedCode(
	code string, genName string, pkgName string, getEnv func(string) string, fileWriter Writer, out io.Writer,
) error {
	const generatedFilePermissions = 0o600

	filename := Filename(genName, pkgName, getEnv("GOFILE"))

	err := fileWriter.WriteFile(filename, []byte(reordered(code, filename, out)), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}

	_, _ = fmt.Fprintf(out, "%s written successfully.\n", filename)

	return nil
}

// Exported variables.
var (
	ErrStale = errors.New("generated file is out of date")
)

// reordered applies the project's declaration order to code, falling back to code as is.
func reordered(code, filename string, out io.Writer) string {
	result, err := Reorder(code)
	if err != nil {
		_, _ = fmt.Fprintf(out, "Warning: %s: %v\n", filename, err)

		return code
	}

	return result
}
