// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the extract-pdf-text CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/study-prep/internal/pdftext"
	"github.com/pdiddy/study-prep/internal/source"
	"github.com/pdiddy/study-prep/internal/version"
)

// rootCmd is the single command of the extract-pdf-text CLI.
var rootCmd = &cobra.Command{
	Use:   "extract-pdf-text <pdf>",
	Short: "Extract all text from a PDF with page-number banners",
	Long: `extract-pdf-text reads a PDF and prints its full text to standard output,
one page after another in document order. Every page is preceded by a banner
naming its 1-based page number, so the output can be split back into pages
while preparing study notes.

The whole document is extracted before anything is printed: a failure part way
through produces no output at all.`,
	Args:    cobra.ExactArgs(1),
	Version: version.String(),
	RunE: func(cmd *cobra.Command, args []string) error {
		// The argument is valid from here on; runtime failures should not
		// repeat the usage text.
		cmd.SilenceUsage = true

		path := args[0]
		if _, err := source.Inspect(path); err != nil {
			return err
		}

		text, err := pdftext.Extract(path)
		if err != nil {
			return fmt.Errorf("extracting text from PDF: %w", err)
		}

		fmt.Println(text)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
