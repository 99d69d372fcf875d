// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package figures

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/study-prep/internal/pdftest"
)

func TestWriteManifest(t *testing.T) {
	dir := t.TempDir()
	pdfPath := pdftest.Write(t, dir, "only page")
	outDir := filepath.Join(dir, "figures")
	opts := Options{PDFPath: pdfPath, OutputDir: outDir, DPI: 96, Format: FormatPNG}

	var log bytes.Buffer
	res, err := Extract(opts, &log)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	manifestPath := filepath.Join(outDir, "manifest.yaml")
	if err := WriteManifest(manifestPath, opts, res); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatalf("parsing manifest: %v", err)
	}

	if m.SourcePDF != pdfPath {
		t.Errorf("source_pdf = %q, want %q", m.SourcePDF, pdfPath)
	}
	if m.DPI != 96 {
		t.Errorf("dpi = %d, want 96", m.DPI)
	}
	if m.Format != "png" {
		t.Errorf("format = %q, want png", m.Format)
	}
	if m.GeneratedAt.IsZero() {
		t.Error("generated_at should be set")
	}
	if len(m.Pages) != 1 {
		t.Fatalf("manifest lists %d pages, want 1", len(m.Pages))
	}
	p := m.Pages[0]
	if p.Page != 1 || p.File != "page_001.png" {
		t.Errorf("page entry = %+v, want page 1 / page_001.png", p)
	}
	if p.Width <= 0 || p.Height <= 0 {
		t.Errorf("page entry has empty dimensions %dx%d", p.Width, p.Height)
	}
}
