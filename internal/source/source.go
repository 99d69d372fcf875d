// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source vets input PDFs before extraction runs.
package source

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Info describes a source PDF that passed preflight checks.
type Info struct {
	Path      string
	PageCount int
}

// Inspect verifies that path names a readable, structurally valid PDF and
// returns its page count. It performs no writes, so callers can rely on the
// filesystem being untouched whenever an error comes back.
func Inspect(path string) (*Info, error) {
	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("PDF file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a PDF file", path)
	}

	conf := model.NewDefaultConfiguration()
	if err := api.ValidateFile(path, conf); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	count, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("counting pages in %s: %w", path, err)
	}

	return &Info{Path: path, PageCount: count}, nil
}
