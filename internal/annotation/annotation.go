// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package annotation classifies slide-deck lines by their annotation markers.
//
// A line is one of four kinds: a timing annotation "^ (M:SS, M:SS)", a line
// that opens like a timing annotation but does not parse, any other marker
// line ("^..." or "autoscale:..."), or plain slide content.
package annotation

import (
	"errors"
	"math/big"
	"regexp"
	"strings"

	"github.com/pdiddy/deck-tools/pkg/types"
)

const (
	// timedPrefix opens every timing annotation.
	timedPrefix = "^ ("
	// autoscalePrefix marks a display directive line.
	autoscalePrefix = "autoscale:"
)

// timedPattern matches "^ (M1:S1, M2:S2)" anchored at the start of a line.
var timedPattern = regexp.MustCompile(`^\^ \(([0-9]+):([0-9]+), ([0-9]+):([0-9]+)\)`)

var sixty = big.NewInt(60)

// ErrNotTimed is returned by ParseTimed for lines that do not match the
// timing annotation pattern.
var ErrNotTimed = errors.New("not a timing annotation")

// Timed holds the parsed fields of a timing annotation. Fields are
// unbounded: any run of digits is accepted.
type Timed struct {
	StartMinutes *big.Int
	StartSeconds *big.Int
	EndMinutes   *big.Int
	EndSeconds   *big.Int

	// StartFrom and StartTo are the byte offsets of "M1:S1" within the line.
	StartFrom int
	StartTo   int

	// Label is the text after the closing parenthesis, whitespace trimmed.
	Label string
}

// Duration is the number of seconds the annotation adds to the running
// clock. The end field is taken as the length of the segment, not as an
// absolute end time.
func (t Timed) Duration() *big.Int {
	d := new(big.Int).Mul(t.EndMinutes, sixty)
	return d.Add(d, t.EndSeconds)
}

// ParseTimed parses a timing annotation. Line terminators are ignored.
func ParseTimed(line string) (Timed, error) {
	m := timedPattern.FindStringSubmatchIndex(line)
	if m == nil {
		return Timed{}, ErrNotTimed
	}

	var fields [4]*big.Int
	for i := range fields {
		// The pattern guarantees a non-empty run of ASCII digits.
		fields[i], _ = new(big.Int).SetString(line[m[2+2*i]:m[3+2*i]], 10)
	}

	return Timed{
		StartMinutes: fields[0],
		StartSeconds: fields[1],
		EndMinutes:   fields[2],
		EndSeconds:   fields[3],
		StartFrom:    m[2],
		StartTo:      m[5],
		Label:        strings.TrimSpace(line[m[1]:]),
	}, nil
}

// IsMarker reports whether line is an annotation the filter removes: its
// first character is "^" or it begins with "autoscale:".
func IsMarker(line string) bool {
	return strings.HasPrefix(line, "^") || strings.HasPrefix(line, autoscalePrefix)
}

// Classify returns the kind of line and, for timing annotations, the parsed
// fields. Timing annotations take precedence over malformed ones, which take
// precedence over other markers.
func Classify(line string) (types.LineKind, Timed) {
	if t, err := ParseTimed(line); err == nil {
		return types.LineTimed, t
	}
	if strings.HasPrefix(line, timedPrefix) {
		return types.LineMalformedTimed, Timed{}
	}
	if IsMarker(line) {
		return types.LineMarker, Timed{}
	}
	return types.LinePlain, Timed{}
}
