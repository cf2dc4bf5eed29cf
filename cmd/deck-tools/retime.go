// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/deck-tools/internal/retime"
	"github.com/pdiddy/deck-tools/internal/schedule"
)

var retimeCmd = &cobra.Command{
	Use:   "retime",
	Short: "Recalculate timing annotation start times in place",
	Long: `Retime scans the slide deck for "^ (M:SS, M:SS)" timing annotations and
rewrites each start time with the running total of the durations before it.
The second time of each annotation is the segment's duration.

Lines that start with "^ (" but are not valid timing annotations are reported
as "ERROR: <line>" and left unchanged. They do not fail the command.`,
	Args: cobra.NoArgs,
	RunE: runRetime,
}

func runRetime(cmd *cobra.Command, args []string) error {
	format, err := schedule.ParseFormat(viper.GetString("retime.schedule"))
	if err != nil {
		return err
	}
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	res, err := retime.RetimeFile(cfg.Retime, out, logger.WithField("cmd", "retime"))
	if err != nil {
		return err
	}

	doc := schedule.Export{
		Total:        res.Total,
		TotalDisplay: retime.FormatClock(res.Total),
		Segments:     res.Segments,
		Diagnostics:  res.Diagnostics,
	}
	if err := schedule.Write(out, doc, format); err != nil {
		return err
	}

	summary := fmt.Sprintf("retimed: %s (%d segments, total %s)",
		cfg.Retime.File, len(res.Segments), doc.TotalDisplay)
	fmt.Fprintln(os.Stderr, summaryStyle.Render(summary))
	if n := len(res.Diagnostics); n > 0 {
		fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("%d malformed timing annotation(s) left unchanged", n)))
	}
	return nil
}

func init() {
	retimeCmd.Flags().String("file", "slides.md", "slide deck to rewrite in place")
	retimeCmd.Flags().Bool("dry-run", false, "print the rewritten deck instead of writing it")
	retimeCmd.Flags().String("schedule", "", "also print the timing schedule: yaml or json")
	_ = viper.BindPFlag("retime.file", retimeCmd.Flags().Lookup("file"))
	_ = viper.BindPFlag("retime.dry_run", retimeCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("retime.schedule", retimeCmd.Flags().Lookup("schedule"))

	rootCmd.AddCommand(retimeCmd)
}
