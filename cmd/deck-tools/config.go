// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/pdiddy/deck-tools/pkg/types"
)

var (
	summaryStyle = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// loadConfig resolves settings from flags, environment and config file,
// falling back to the fixed slides.md/codes.md names.
func loadConfig(v *viper.Viper) (types.Config, error) {
	def := types.DefaultConfig()
	v.SetDefault("strip.input", def.Strip.Input)
	v.SetDefault("strip.output", def.Strip.Output)
	v.SetDefault("retime.file", def.Retime.File)
	v.SetDefault("log.level", def.Log.Level)

	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	if cfg.Strip.Input == "" || cfg.Strip.Output == "" || cfg.Retime.File == "" {
		return types.Config{}, fmt.Errorf("reading configuration: file names must not be empty")
	}
	return cfg, nil
}
