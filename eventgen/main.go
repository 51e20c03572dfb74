// eventgen generates the explicit event declaration of a struct for eventmon.
// Install it with `go install github.com/toejough/eventmon/eventgen@latest` and add a
// `//go:generate eventgen <Type>` comment next to the type. The tool writes
// generated_<Type>Events.go (or generated_<Type>Events_test.go, for test files) containing one
// name constant per event field and an Events method, so *<Type> implements eventmon.EventSource.
// Pass `--check` to fail with a diff instead of writing when the generated file is stale.
package main

import (
	"fmt"
	"os"

	"github.com/toejough/eventmon/eventgen/run"
)

// main is the entry point of the eventgen tool.
func main() {
	if os.Args == nil {
		return
	}

	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements run.FileSystem using os package.
type realFileSystem struct{}

// ReadFile reads the file named by name and returns the contents.
func (fs *realFileSystem) ReadFile(name string) ([]byte, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", name, err)
	}

	return data, nil
}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}
