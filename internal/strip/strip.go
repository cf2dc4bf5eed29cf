// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package strip removes annotation lines from a slide deck, leaving the
// slide content (typically the code listings) behind.
package strip

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/deck-tools/internal/annotation"
	"github.com/pdiddy/deck-tools/internal/deck"
	"github.com/pdiddy/deck-tools/pkg/types"
)

// Result holds the outcome of a strip run.
type Result struct {
	Read    int
	Kept    int
	Removed int
}

// Filter returns a new slice with every marker line removed. Surviving lines
// keep their order and bytes.
func Filter(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if annotation.IsMarker(l) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// StripFile reads cfg.Input, filters it and overwrites cfg.Output with the
// remaining lines. A one-line summary is printed to w. Nothing is written if
// the input cannot be read.
func StripFile(cfg types.StripConfig, w io.Writer, log logrus.FieldLogger) (Result, error) {
	lines, err := deck.ReadLines(cfg.Input)
	if err != nil {
		return Result{}, err
	}
	log.WithFields(logrus.Fields{"file": cfg.Input, "lines": len(lines)}).Debug("deck read")

	kept := Filter(lines)
	if err := deck.WriteLines(cfg.Output, kept); err != nil {
		return Result{}, err
	}

	result := Result{Read: len(lines), Kept: len(kept), Removed: len(lines) - len(kept)}
	log.WithFields(logrus.Fields{"file": cfg.Output, "lines": result.Kept}).Info("filtered deck written")

	fmt.Fprintf(w, "stripped: %s -> %s (%d kept, %d removed)\n",
		cfg.Input, cfg.Output, result.Kept, result.Removed)
	return result, nil
}
