// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deck-tools/internal/strip"
)

var stripCmd = &cobra.Command{
	Use:   "strip",
	Short: "Write the deck without annotation lines",
	Long: `Strip reads the slide deck, drops every line that starts with "^" or
"autoscale:", and writes the remaining lines unchanged to the output file
(codes.md by default). The input is left untouched.`,
	Args: cobra.NoArgs,
	RunE: runStrip,
}

func runStrip(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	_, err = strip.StripFile(cfg.Strip, cmd.OutOrStdout(), logger.WithField("cmd", "strip"))
	return err
}

func init() {
	stripCmd.Flags().String("input", "slides.md", "slide deck to read")
	stripCmd.Flags().String("output", "codes.md", "file to write the stripped deck to")
	_ = viper.BindPFlag("strip.input", stripCmd.Flags().Lookup("input"))
	_ = viper.BindPFlag("strip.output", stripCmd.Flags().Lookup("output"))

	rootCmd.AddCommand(stripCmd)
}
