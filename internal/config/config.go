// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads optional tool defaults from a study-prep.yaml file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/study-prep/internal/figures"
)

// Figures holds defaults for the figure extraction tool.
type Figures struct {
	// DPI is the default rasterization resolution.
	DPI int

	// Format is the default image format: png, jpg, or jpeg.
	Format string
}

// Config groups all tool defaults.
type Config struct {
	Figures Figures
}

// Load reads configuration from cfgFile, or from study-prep.yaml in the
// working directory or ~/.config/study-prep/ when cfgFile is empty. A
// missing implicit config file is fine; an explicit one must be readable.
// Environment variables with the STUDY_PREP prefix override file values
// (e.g. STUDY_PREP_FIGURES_DPI). Flag precedence over all of this is the
// caller's job.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("study-prep")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "study-prep"))
		}
	}

	v.SetEnvPrefix("STUDY_PREP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("figures.dpi", figures.DefaultDPI)
	v.SetDefault("figures.format", string(figures.FormatPNG))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	return &Config{
		Figures: Figures{
			DPI:    v.GetInt("figures.dpi"),
			Format: v.GetString("figures.format"),
		},
	}, nil
}
