// Package run implements the main logic for the eventgen tool in a testable way.
package run

import (
	"fmt"
	"io"

	"github.com/alexflint/go-arg"
	"github.com/dave/dst"
	load "github.com/toejough/eventmon/eventgen/run/2_load"
	detect "github.com/toejough/eventmon/eventgen/run/3_detect"
	generate "github.com/toejough/eventmon/eventgen/run/5_generate"
	output "github.com/toejough/eventmon/eventgen/run/6_output"
)

// FileSystem interface for reading and writing generated files.
type FileSystem interface {
	output.Reader
	output.Writer
}

// Run executes the eventgen tool logic. It takes command-line arguments, an environment variable
// getter, a FileSystem for file operations, and a writer for progress messages. It loads the
// package in the current directory, finds the named struct, and writes (or with --check,
// verifies) the file declaring its events.
func Run(args []string, getEnv func(string) string, fileSys FileSystem, out io.Writer) error {
	parsed, err := parseArgs(args)
	if err != nil {
		return err
	}

	files, _, err := load.PackageDST(".")
	if err != nil {
		return fmt.Errorf("failed to load package: %w", err)
	}

	found, err := detect.FindStruct(packageFiles(files, getEnv("GOPACKAGE")), parsed.Type)
	if err != nil {
		return err
	}

	code, err := generate.Events(found, found.PkgName)
	if err != nil {
		return err
	}

	genName := parsed.Name
	if genName == "" {
		genName = found.TypeName + "Events"
	}

	if parsed.Check {
		return output.CheckGeneratedCode(code, genName, found.PkgName, getEnv, fileSys, out)
	}

	return output.WriteGeneratedCode(code, genName, found.PkgName, getEnv, fileSys, out)
}

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Type  string `arg:"positional,required" help:"struct type whose events to declare (e.g. Widget)"`
	Name  string `arg:"--name"              help:"base name of the generated file (defaults to <Type>Events)"`
	Check bool   `arg:"--check"             help:"fail with a diff instead of writing when the generated file is stale"`
}

// packageFiles keeps the files of pkgName when it is set and any file belongs to it, so a
// directory holding both a package and its external test package resolves to the caller's.
func packageFiles(files []*dst.File, pkgName string) []*dst.File {
	if pkgName == "" {
		return files
	}

	kept := make([]*dst.File, 0, len(files))

	for _, file := range files {
		if file.Name.Name == pkgName {
			kept = append(kept, file)
		}
	}

	if len(kept) == 0 {
		return files
	}

	return kept
}

// parseArgs parses command-line arguments into cliArgs.
func parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{Program: "eventgen"}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}
