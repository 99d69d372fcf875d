// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest builds small valid PDF documents for tests.
//
// The generated files are uncompressed PDF 1.4 with a correct cross-reference
// table, a single Helvetica font, and one text line per page at a fixed
// position, so the files stay readable by strict and relaxed parsers alike
// without binary fixtures in the tree.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Document returns the bytes of a PDF with one page per entry in pages.
// An empty string produces a page with no text content.
func Document(pages ...string) []byte {
	if len(pages) == 0 {
		pages = []string{""}
	}

	type object struct {
		num  int
		body string
	}

	// Objects 1-3 are catalog, page tree, and font; each page then takes
	// two objects (page dict, content stream) starting at 4.
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	// The font carries uniform width metrics so text extractors that compute
	// glyph advances from /Widths see real horizontal gaps at word breaks.
	widths := strings.TrimSpace(strings.Repeat("600 ", 95))
	objects := []object{
		{1, "<< /Type /Catalog /Pages 2 0 R >>"},
		{2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages))},
		{3, fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding /FirstChar 32 /LastChar 126 /Widths [%s] >>", widths)},
	}
	for i, text := range pages {
		pageNum := 4 + 2*i
		objects = append(objects, object{pageNum, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			pageNum+1)})
		stream := contentStream(text)
		objects = append(objects, object{pageNum + 1, fmt.Sprintf(
			"<< /Length %d >>\nstream\n%sendstream", len(stream), stream)})
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make(map[int]int, len(objects))
	for _, obj := range objects {
		offsets[obj.num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", obj.num, obj.body)
	}

	// Cross-reference entries are exactly 20 bytes each.
	xrefStart := buf.Len()
	size := len(objects) + 1
	fmt.Fprintf(&buf, "xref\n0 %d\n", size)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num < size; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefStart)

	return buf.Bytes()
}

// Write saves a generated PDF under dir and returns its path.
func Write(t testing.TB, dir string, pages ...string) string {
	t.Helper()
	path := filepath.Join(dir, "sample.pdf")
	if err := os.WriteFile(path, Document(pages...), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// contentStream draws text as a single line near the top of the page.
func contentStream(text string) string {
	if text == "" {
		return ""
	}
	return fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET\n", escapeString(text))
}

// escapeString backslash-escapes the characters that delimit PDF literal strings.
func escapeString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
