// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/study-prep/internal/pdftest"
)

func TestRender(t *testing.T) {
	rule := strings.Repeat("=", 80)

	tests := []struct {
		name  string
		pages []string
		want  string
	}{
		{
			name:  "no pages",
			pages: nil,
			want:  "",
		},
		{
			name:  "single page",
			pages: []string{"hello\n"},
			want:  "\n" + rule + "\nPAGE 1\n" + rule + "\n\nhello\n",
		},
		{
			name:  "empty page keeps its banner",
			pages: []string{""},
			want:  "\n" + rule + "\nPAGE 1\n" + rule + "\n\n",
		},
		{
			name:  "three pages in order with empty middle",
			pages: []string{"first\n", "", "third\n"},
			want: "\n" + rule + "\nPAGE 1\n" + rule + "\n\nfirst\n" +
				"\n" + rule + "\nPAGE 2\n" + rule + "\n\n" +
				"\n" + rule + "\nPAGE 3\n" + rule + "\n\nthird\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(tt.pages))
		})
	}
}

func TestExtract(t *testing.T) {
	path := pdftest.Write(t, t.TempDir(), "Hello PDF", "Second page here")

	got, err := Extract(path)
	require.NoError(t, err)

	assert.Contains(t, got, "PAGE 1")
	assert.Contains(t, got, "PAGE 2")
	assert.NotContains(t, got, "PAGE 3")
	assert.Contains(t, got, "Hello PDF")
	assert.Contains(t, got, "Second page here")

	rule := strings.Repeat("=", 80)
	assert.Equal(t, 4, strings.Count(got, rule), "two rule lines per page")

	// Page text must sit between its own banner and the next one.
	assert.Less(t, strings.Index(got, "PAGE 1"), strings.Index(got, "Hello PDF"))
	assert.Less(t, strings.Index(got, "Hello PDF"), strings.Index(got, "PAGE 2"))
	assert.Less(t, strings.Index(got, "PAGE 2"), strings.Index(got, "Second page here"))
}

func TestExtractEmptyPage(t *testing.T) {
	path := pdftest.Write(t, t.TempDir(), "")

	got, err := Extract(path)
	require.NoError(t, err)

	rule := strings.Repeat("=", 80)
	assert.Equal(t, "\n"+rule+"\nPAGE 1\n"+rule+"\n\n", got)
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.pdf")
			},
		},
		{
			name: "not a PDF",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "junk.pdf")
				require.NoError(t, os.WriteFile(path, []byte("plain text, no xref"), 0o644))
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.setup(t))
			require.Error(t, err)
		})
	}
}
