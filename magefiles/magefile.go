//go:build mage

// Package main contains Mage build targets for the study-prep developer tooling.
package main

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binDir = "bin"

// binaries maps output names to their main packages.
var binaries = map[string]string{
	"extract-pdf-text": "./cmd/extract-pdf-text",
	"extract-figures":  "./cmd/extract-figures",
}

// Build compiles both CLI binaries into bin/ with version metadata stamped in.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}

	ldflags := versionLdflags()
	for name, pkg := range binaries {
		out := filepath.Join(binDir, name)
		if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, pkg); err != nil {
			return fmt.Errorf("go build %s: %w", name, err)
		}
		fmt.Printf("Built %s\n", out)
	}
	return nil
}

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm(binDir)
}

// All builds the binaries and runs the tests.
func All() {
	mg.Deps(Build, Test)
}

// Stats prints production and test line counts for the Go sources.
func Stats() error {
	prod, err := countGoLines(false)
	if err != nil {
		return err
	}
	test, err := countGoLines(true)
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", test)
	return nil
}

// versionLdflags assembles the -ldflags value that stamps version metadata
// into the internal/version package.
func versionLdflags() string {
	version := "0.0.0-dev"
	if tag, err := sh.Output("git", "describe", "--tags", "--always", "--dirty"); err == nil && tag != "" {
		version = tag
	}
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil || commit == "" {
		commit = "unknown"
	}
	date := time.Now().UTC().Format(time.RFC3339)

	const pkg = "github.com/pdiddy/study-prep/internal/version"
	return fmt.Sprintf("-X %s.Version=%s -X %s.GitCommit=%s -X %s.BuildDate=%s",
		pkg, version, pkg, commit, pkg, date)
}

// countGoLines counts non-blank lines in the module's Go files: test files
// when testOnly is set, production files otherwise.
func countGoLines(testOnly bool) (int, error) {
	total := 0
	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if name != "." && (name == binDir || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		if strings.HasSuffix(path, "_test.go") != testOnly {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		for _, line := range bytes.Split(data, []byte("\n")) {
			if len(bytes.TrimSpace(line)) > 0 {
				total++
			}
		}
		return nil
	})
	return total, err
}
