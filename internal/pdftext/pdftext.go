// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts page text from PDF documents and assembles it
// behind page-number banners for study-note preparation.
package pdftext

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// bannerWidth is the width of the page separator rule.
const bannerWidth = 80

// defaultFontSize stands in when a text element carries no size.
const defaultFontSize = 12

// Extract opens the PDF at path and returns its full text: every page in
// document order, each preceded by a PAGE banner. Extraction is
// all-or-nothing; any page-level failure aborts the whole run.
func Extract(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			// Unreadable page object: keep the banner, emit no text.
			pages = append(pages, "")
			continue
		}
		text, err := pageText(p)
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d: %w", i, err)
		}
		pages = append(pages, text)
	}

	return render(pages), nil
}

// render concatenates page texts behind their banners. Every page gets a
// banner, including the first; page numbers are 1-based.
func render(pages []string) string {
	rule := strings.Repeat("=", bannerWidth)
	var b strings.Builder
	for i, text := range pages {
		fmt.Fprintf(&b, "\n%s\nPAGE %d\n%s\n\n", rule, i+1, rule)
		b.WriteString(text)
	}
	return b.String()
}

// pageText extracts one page using row grouping, falling back to the
// library's plain-text pass when row extraction fails.
func pageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("plain text fallback: %w", err)
		}
		return text, nil
	}

	kept := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			kept = append(kept, row)
		}
	}
	// Reading order is top of page first; PDF Y grows upward.
	sort.SliceStable(kept, func(i, j int) bool {
		return averageY(kept[i].Content) > averageY(kept[j].Content)
	})

	var b strings.Builder
	for _, row := range kept {
		line := rowText(row.Content)
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// rowText joins a row's elements left to right, inserting a space when the
// horizontal gap between neighbors exceeds a fifth of the font size.
func rowText(elements []pdf.Text) string {
	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	var b strings.Builder
	for i, el := range sorted {
		b.WriteString(el.S)
		if i == len(sorted)-1 {
			break
		}
		size := el.FontSize
		if size <= 0 {
			size = defaultFontSize
		}
		gap := sorted[i+1].X - (el.X + el.W)
		if gap > size*0.2 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// averageY is the mean Y coordinate of a row's elements.
func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, el := range elements {
		total += el.Y
	}
	return total / float64(len(elements))
}
