//go:build mage

// Package main contains Mage build targets for tex2mdbook developer tooling.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "tex2mdbook"
	cmdPkg  = "./cmd/tex2mdbook"

	exampleDir = "testdata"
	exampleOut = "build/example"
)

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Example splits testdata/thesis.md into build/example without pandoc.
func Example() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName),
		filepath.Join(exampleDir, "thesis.md"), "--skip-pandoc", "--manifest", "-o", exampleOut)
}

// ExampleTeX converts testdata/thesis.tex with the local pandoc and splits it.
func ExampleTeX() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName),
		filepath.Join(exampleDir, "thesis.tex"), "--index", "-o", exampleOut)
}

// Clean removes build output.
func Clean() error {
	for _, dir := range []string{binDir, "build"} {
		if err := sh.Rm(dir); err != nil {
			return err
		}
		fmt.Println("removed", dir)
	}
	return nil
}

// Stats prints project metrics: Go production and test lines of code.
func Stats() error {
	var prod, tests int
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != "." && strings.HasPrefix(d.Name(), "_") {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		n := countLines(data)
		if strings.HasSuffix(path, "_test.go") {
			tests += n
		} else {
			prod += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", tests)
	return nil
}

// countLines counts non-blank lines in data.
func countLines(data []byte) int {
	n := 0
	for _, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}
