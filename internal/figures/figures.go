// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package figures rasterizes PDF pages into per-page image files that can be
// inspected and cropped into study figures.
package figures

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/gen2brain/go-fitz"
)

// DefaultDPI is the rasterization resolution used when none is configured.
const DefaultDPI = 300

// Format selects the encoding and file extension for rendered pages.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatJPEG Format = "jpeg"
)

// ParseFormat validates a user-supplied format name. Only the lowercase
// names png, jpg, and jpeg are accepted.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPNG, FormatJPG, FormatJPEG:
		return Format(s), nil
	}
	return "", fmt.Errorf("invalid format %q (choose png, jpg, or jpeg)", s)
}

// Ext returns the file extension for the format, without the dot.
func (f Format) Ext() string { return string(f) }

// Encode writes img to w in the receiver's format. jpg and jpeg share the
// JPEG encoder but keep their own extensions.
func (f Format) Encode(w io.Writer, img image.Image) error {
	switch f {
	case FormatJPG, FormatJPEG:
		return jpeg.Encode(w, img, nil)
	default:
		return png.Encode(w, img)
	}
}

// Options control a render run.
type Options struct {
	// PDFPath is the source document.
	PDFPath string

	// OutputDir receives one image per page; created if absent.
	OutputDir string

	// DPI is the rasterization resolution. Must be positive.
	DPI int

	// Format selects the image encoding and file extension.
	Format Format
}

// Validate reports the first problem with the options.
func (o Options) Validate() error {
	if o.PDFPath == "" {
		return errors.New("no PDF path given")
	}
	if o.OutputDir == "" {
		return errors.New("no output directory given")
	}
	if o.DPI <= 0 {
		return fmt.Errorf("invalid dpi %d: must be a positive integer", o.DPI)
	}
	if _, err := ParseFormat(string(o.Format)); err != nil {
		return err
	}
	return nil
}

// Page records one rendered page.
type Page struct {
	// Number is the 1-based page number.
	Number int

	// File is the image file name within the output directory.
	File string

	// Width and Height are the rendered size in pixels.
	Width  int
	Height int
}

// Result holds the outcome of a render run.
type Result struct {
	Pages []Page
}

// Count returns the number of pages rendered.
func (r *Result) Count() int { return len(r.Pages) }

// Extract renders every page of the source PDF into the output directory,
// writing page_NNN image files in document order and a confirmation line per
// page to w. The document is opened before the output directory is created,
// so an unreadable PDF leaves the filesystem untouched. Pages are rendered
// strictly sequentially; the first failure aborts the run, leaving any files
// already written in place.
func Extract(opts Options, w io.Writer) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	doc, err := fitz.New(opts.PDFPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", opts.PDFPath, err)
	}
	defer doc.Close()

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", opts.OutputDir, err)
	}

	n := doc.NumPage()
	result := &Result{Pages: make([]Page, 0, n)}
	for i := 0; i < n; i++ {
		img, err := doc.ImageDPI(i, float64(opts.DPI))
		if err != nil {
			return nil, fmt.Errorf("rendering page %d: %w", i+1, err)
		}

		name := pageFileName(i+1, opts.Format)
		path := filepath.Join(opts.OutputDir, name)
		if err := writeImage(path, opts.Format, img); err != nil {
			return nil, fmt.Errorf("writing page %d: %w", i+1, err)
		}

		bounds := img.Bounds()
		result.Pages = append(result.Pages, Page{
			Number: i + 1,
			File:   name,
			Width:  bounds.Dx(),
			Height: bounds.Dy(),
		})
		fmt.Fprintf(w, "%s Saved: %s\n", color.GreenString("✓"), path)
	}

	return result, nil
}

// pageFileName builds the zero-padded image name for a 1-based page number,
// so lexical order matches page order up to page 999.
func pageFileName(n int, f Format) string {
	return fmt.Sprintf("page_%03d.%s", n, f.Ext())
}

// writeImage encodes img into a freshly created (or truncated) file.
func writeImage(path string, f Format, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
