//go:build targ

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	output "github.com/toejough/eventmon/eventgen/run/6_output"
	"github.com/toejough/targ"
	"github.com/toejough/targ/sh"
)

// Build compiles eventgen into bin/.
func Build() error {
	fmt.Println("building bin/eventgen")

	if err := os.MkdirAll("bin", 0o755); err != nil {
		return fmt.Errorf("creating bin: %w", err)
	}

	return sh.Run("go", "build", "-o", "bin/eventgen", "./eventgen")
}

// Check tidies, regenerates, tests, reorders and lints.
func Check() error {
	return targ.Deps(Tidy, CheckCoverage, ReorderDecls, Lint)
}

// CheckCoverage fails when any function outside eventgen/main.go and generated code is below
// minCoverage percent.
func CheckCoverage() error {
	if err := targ.Deps(Test); err != nil {
		return err
	}

	var report bytes.Buffer

	cmd := exec.Command("go", "tool", "cover", "-func=coverage.out")
	cmd.Stdout = &report
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("reading coverage.out: %w", err)
	}

	var (
		worst     string
		worstPct  = 101.0
		functions int
	)

	scanner := bufio.NewScanner(&report)
	for scanner.Scan() {
		line := scanner.Text()
		if coverageExcluded(line) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		pct, err := strconv.ParseFloat(strings.TrimSuffix(fields[len(fields)-1], "%"), 64)
		if err != nil {
			return fmt.Errorf("parsing coverage line %q: %w", line, err)
		}

		functions++

		if pct < worstPct {
			worst, worstPct = line, pct
		}
	}

	if functions == 0 {
		return errNoCoverage
	}

	fmt.Printf("%d functions covered, lowest: %s\n", functions, worst)

	if worstPct < minCoverage {
		return fmt.Errorf("%w: %s", errLowCoverage, worst)
	}

	return nil
}

// Generate rebuilds eventgen and runs go generate with it first on the PATH.
func Generate() error {
	if err := targ.Deps(Build); err != nil {
		return err
	}

	bin, err := filepath.Abs("bin")
	if err != nil {
		return fmt.Errorf("locating bin: %w", err)
	}

	cmd := exec.Command("go", "generate", "./...")
	cmd.Env = append(os.Environ(), "PATH="+bin+string(filepath.ListSeparator)+os.Getenv("PATH"))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.Run("golangci-lint", "run")
}

// Mutate runs the ooze mutation suite in dev/.
func Mutate() error {
	if err := targ.Deps(Test); err != nil {
		return err
	}

	return sh.Run("go", "test", "-timeout=6000s", "-tags=mutation", "-ooze.v", "./dev/...", "-run=TestMutation")
}

// ReorderDecls rewrites hand-written sources into eventgen's declaration order.
func ReorderDecls() error {
	return eachSource(func(path, current, wanted string) error {
		fmt.Println("reordered", path)

		return os.WriteFile(path, []byte(wanted), 0o600)
	})
}

// ReorderDeclsCheck prints the diff for every hand-written source out of declaration order.
func ReorderDeclsCheck() error {
	stale := 0

	err := eachSource(func(path, current, wanted string) error {
		stale++

		fmt.Print(output.Diff(path, current, wanted))

		return nil
	})
	if err != nil {
		return err
	}

	if stale > 0 {
		return fmt.Errorf("%w: %d file(s), run 'targ reorder-decls'", errOutOfOrder, stale)
	}

	return nil
}

// Test regenerates the UAT code and runs every test with the race detector and coverage.
func Test() error {
	if err := targ.Deps(Generate); err != nil {
		return err
	}

	return sh.Run(
		"go", "test", "-timeout=2m", "-race", "-count=1",
		"-coverprofile=coverage.out",
		"-coverpkg=./,./internal/...,./match/...,./eventgen/...",
		"./...",
	)
}

// Tidy runs go mod tidy.
func Tidy() error {
	return sh.Run("go", "mod", "tidy")
}

const minCoverage = 80.0

// unexported variables.
var (
	errLowCoverage = errors.New("function coverage below minimum")
	errNoCoverage  = errors.New("no coverage data in coverage.out")
	errOutOfOrder  = errors.New("declarations out of order")
)

func coverageExcluded(line string) bool {
	return strings.HasPrefix(line, "total:") ||
		strings.Contains(line, "eventgen/main.go") ||
		strings.Contains(line, "/generated_")
}

// eachSource calls visit for every hand-written Go file whose declarations are out of order.
// The pack under _examples, hidden directories and generated files are skipped.
func eachSource(visit func(path, current, wanted string) error) error {
	return filepath.WalkDir(".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := entry.Name()

		if entry.IsDir() {
			if path != "." && (strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Ext(name) != ".go" || strings.HasPrefix(name, "generated_") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		if bytes.HasPrefix(content, []byte("// Code generated")) {
			return nil
		}

		wanted, err := output.Reorder(string(content))
		if err != nil {
			fmt.Printf("skipping %s: %v\n", path, err)

			return nil
		}

		if wanted == string(content) {
			return nil
		}

		return visit(path, string(content), wanted)
	})
}
