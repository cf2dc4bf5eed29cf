// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package retime recalculates the start times of timing annotations in a
// slide deck from a running clock.
//
// Each "^ (M1:S1, M2:S2)" line has its M1:S1 replaced by the clock value at
// that point, after which the clock advances by M2*60+S2 seconds. Lines that
// open with "^ (" but do not parse are reported and left alone.
package retime

import (
	"fmt"
	"io"
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/deck-tools/internal/annotation"
	"github.com/pdiddy/deck-tools/internal/deck"
	"github.com/pdiddy/deck-tools/pkg/types"
)

// Result holds the rewritten deck and what was learned while scanning it.
type Result struct {
	// Lines is the rewritten deck, one entry per input line.
	Lines []string

	// Diagnostics lists malformed timing annotations in line order.
	Diagnostics []types.Diagnostic

	// Segments lists every rewritten timing annotation in line order.
	Segments []types.Segment

	// Total is the clock value after the last line, in seconds.
	Total *big.Int
}

// malformedReason is attached to every malformed timing annotation.
const malformedReason = "expected ^ (M:SS, M:SS)"

var sixty = big.NewInt(60)

// FormatClock renders seconds as minutes:SS with unpadded minutes. The clock
// has no upper bound.
func FormatClock(seconds *big.Int) string {
	m, s := new(big.Int).QuoRem(seconds, sixty, new(big.Int))
	return fmt.Sprintf("%s:%02d", m, s.Int64())
}

// Normalize rewrites the start time of every timing annotation in lines.
// The input slice is not modified.
func Normalize(lines []string) Result {
	res := Result{Lines: make([]string, len(lines))}
	clock := new(big.Int)

	for i, line := range lines {
		res.Lines[i] = line

		switch kind, t := annotation.Classify(line); kind {
		case types.LineTimed:
			display := FormatClock(clock)
			res.Lines[i] = line[:t.StartFrom] + display + line[t.StartTo:]
			d := t.Duration()
			res.Segments = append(res.Segments, types.Segment{
				Line:     i + 1,
				Start:    new(big.Int).Set(clock),
				Duration: d,
				Display:  display,
				Label:    t.Label,
			})
			clock.Add(clock, d)

		case types.LineMalformedTimed:
			res.Diagnostics = append(res.Diagnostics, types.Diagnostic{
				Line:    i + 1,
				Content: deck.TrimEOL(line),
				Reason:  malformedReason,
			})
		}
	}

	res.Total = clock
	return res
}

// RetimeFile reads cfg.File, normalizes it and writes it back to the same
// path. Each diagnostic is printed to w as "ERROR: <line>". With cfg.DryRun
// the rewritten deck is printed to w instead of being written. Malformed
// annotations never cause an error; only I/O failures do, and in that case
// the file is left untouched.
func RetimeFile(cfg types.RetimeConfig, w io.Writer, log logrus.FieldLogger) (Result, error) {
	lines, err := deck.ReadLines(cfg.File)
	if err != nil {
		return Result{}, err
	}
	log.WithFields(logrus.Fields{"file": cfg.File, "lines": len(lines)}).Debug("deck read")

	res := Normalize(lines)

	for _, d := range res.Diagnostics {
		log.WithFields(logrus.Fields{"line": d.Line, "reason": d.Reason}).Debug("malformed timing annotation")
		fmt.Fprintf(w, "ERROR: %s\n", d.Content)
	}

	if cfg.DryRun {
		_, err := io.WriteString(w, deck.Join(res.Lines))
		return res, err
	}

	if err := deck.WriteLines(cfg.File, res.Lines); err != nil {
		return Result{}, err
	}
	log.WithFields(logrus.Fields{
		"file":     cfg.File,
		"segments": len(res.Segments),
		"total":    FormatClock(res.Total),
	}).Info("deck retimed")

	return res, nil
}
