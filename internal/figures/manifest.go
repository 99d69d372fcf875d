// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package figures

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"
)

// Manifest is the on-disk record of a render run. Cropping or flashcard
// tooling can read it instead of re-listing the output directory.
type Manifest struct {
	SourcePDF   string         `yaml:"source_pdf"`
	DPI         int            `yaml:"dpi"`
	Format      string         `yaml:"format"`
	GeneratedAt time.Time      `yaml:"generated_at"`
	Pages       []ManifestPage `yaml:"pages"`
}

// ManifestPage records one rendered page file and its pixel size.
type ManifestPage struct {
	Page   int    `yaml:"page"`
	File   string `yaml:"file"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// WriteManifest saves a YAML manifest describing a completed render run.
func WriteManifest(path string, opts Options, res *Result) error {
	m := Manifest{
		SourcePDF:   opts.PDFPath,
		DPI:         opts.DPI,
		Format:      string(opts.Format),
		GeneratedAt: time.Now(),
		Pages:       make([]ManifestPage, 0, len(res.Pages)),
	}
	for _, p := range res.Pages {
		m.Pages = append(m.Pages, ManifestPage{
			Page:   p.Number,
			File:   p.File,
			Width:  p.Width,
			Height: p.Height,
		})
	}

	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
