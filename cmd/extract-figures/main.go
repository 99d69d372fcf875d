// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the extract-figures CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdiddy/study-prep/internal/config"
	"github.com/pdiddy/study-prep/internal/figures"
	"github.com/pdiddy/study-prep/internal/source"
	"github.com/pdiddy/study-prep/internal/version"
)

// rootCmd is the single command of the extract-figures CLI.
var rootCmd = &cobra.Command{
	Use:   "extract-figures --pdf <path> --output <dir>",
	Short: "Rasterize every PDF page into an image for figure cropping",
	Long: `extract-figures renders each page of a PDF into a numbered image file
(page_001.png, page_002.png, ...) inside the output directory, at a
configurable resolution. The images are meant for manual review: identify the
figures you need, crop them into their own files, and delete the rest.

Defaults for --dpi and --fmt can come from study-prep.yaml or from
STUDY_PREP_* environment variables; explicit flags always win.`,
	Example: `  # Extract from a chapter PDF
  extract-figures --pdf sources/chapter_1.pdf --output figures/chapter_1/

  # Extract at higher resolution
  extract-figures --pdf sources/chapter_2.pdf --output figures/chapter_2/ --dpi 600

  # Extract as JPEG instead of PNG
  extract-figures --pdf sources/appendix.pdf --output figures/appendix/ --fmt jpg`,
	Args:    cobra.NoArgs,
	Version: version.String(),
	RunE:    runExtract,
}

func init() {
	rootCmd.Flags().String("pdf", "", "path to the source PDF file (required)")
	rootCmd.Flags().String("output", "", "directory for extracted page images (required)")
	rootCmd.Flags().Int("dpi", figures.DefaultDPI, "resolution in DPI")
	rootCmd.Flags().String("fmt", string(figures.FormatPNG), "output image format: png, jpg, or jpeg")
	rootCmd.Flags().String("manifest", "", "also write a YAML manifest of the rendered pages to this path")
	rootCmd.Flags().String("config", "", "config file (default: ./study-prep.yaml or ~/.config/study-prep/study-prep.yaml)")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.MarkFlagRequired("pdf")
	rootCmd.MarkFlagRequired("output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	pdfPath, _ := flags.GetString("pdf")
	outputDir, _ := flags.GetString("output")
	manifestPath, _ := flags.GetString("manifest")
	cfgFile, _ := flags.GetString("config")
	if noColor, _ := flags.GetBool("no-color"); noColor {
		color.NoColor = true
	}

	// Values given on the command line are rejected before anything touches
	// the filesystem, config file included.
	if flags.Changed("fmt") {
		name, _ := flags.GetString("fmt")
		if _, err := figures.ParseFormat(name); err != nil {
			return err
		}
	}
	if flags.Changed("dpi") {
		if dpi, _ := flags.GetInt("dpi"); dpi <= 0 {
			return fmt.Errorf("invalid dpi %d: must be a positive integer", dpi)
		}
	}

	// Arguments are good; runtime failures should not repeat the usage text.
	cmd.SilenceUsage = true

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	dpi := cfg.Figures.DPI
	if flags.Changed("dpi") {
		dpi, _ = flags.GetInt("dpi")
	}
	name := cfg.Figures.Format
	if flags.Changed("fmt") {
		name, _ = flags.GetString("fmt")
	}
	format, err := figures.ParseFormat(name)
	if err != nil {
		return err
	}

	opts := figures.Options{PDFPath: pdfPath, OutputDir: outputDir, DPI: dpi, Format: format}
	if err := opts.Validate(); err != nil {
		return err
	}

	info, err := source.Inspect(pdfPath)
	if err != nil {
		return err
	}

	fmt.Printf("Extracting figures from: %s\n", pdfPath)
	fmt.Printf("Output directory: %s\n", outputDir)
	fmt.Printf("Resolution: %d DPI\n", dpi)
	fmt.Printf("Pages: %d\n\n", info.PageCount)

	res, err := figures.Extract(opts, os.Stdout)
	if err != nil {
		// Print the error together with the build reminder, in order.
		cmd.SilenceErrors = true
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		fmt.Fprintln(os.Stderr, "\nMake sure the binary was built with its bundled MuPDF renderer:")
		fmt.Fprintln(os.Stderr, "  CGO_ENABLED=1 go build ./cmd/extract-figures  # needs a C toolchain")
		return err
	}

	fmt.Printf("\n%s Successfully extracted %d pages\n", color.GreenString("✓"), res.Count())

	if manifestPath != "" {
		if err := figures.WriteManifest(manifestPath, opts, res); err != nil {
			return err
		}
		fmt.Printf("%s Wrote manifest: %s\n", color.GreenString("✓"), manifestPath)
	}

	fmt.Println("\nNext steps:")
	fmt.Printf("1. Review extracted images in %s\n", outputDir)
	fmt.Println("2. Identify figures you want to use")
	fmt.Println("3. Crop and rename relevant figures (e.g., page_005.png → fig_1_5.png)")
	fmt.Println("4. Delete full-page images you don't need")
	fmt.Println("5. Reference figures in flashcards with relative paths:")
	fmt.Printf("   ![Figure description](%s)\n", filepath.Join(outputDir, "fig_1_5.png"))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
