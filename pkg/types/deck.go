// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "math/big"

// LineKind classifies a single line of a slide deck.
type LineKind string

const (
	// LinePlain is slide content with no annotation marker.
	LinePlain LineKind = "plain"

	// LineMarker is an annotation line (leading "^" or "autoscale:") that
	// carries no timing.
	LineMarker LineKind = "marker"

	// LineTimed is a well-formed "^ (M:SS, M:SS)" timing annotation.
	LineTimed LineKind = "timed"

	// LineMalformedTimed starts like a timing annotation ("^ (") but does
	// not parse as one.
	LineMalformedTimed LineKind = "malformed_timed"
)

// Diagnostic reports a line that looked like a timing annotation but could
// not be used.
type Diagnostic struct {
	// Line is the 1-based line number in the source document.
	Line int `json:"line" yaml:"line"`

	// Content is the offending line without its line terminator.
	Content string `json:"content" yaml:"content"`

	// Reason says why the line was rejected.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Segment records one rewritten timing annotation and where it sits on the
// running clock.
type Segment struct {
	// Line is the 1-based line number of the annotation.
	Line int `json:"line" yaml:"line"`

	// Start is the running clock, in seconds, when the annotation was reached.
	Start *big.Int `json:"start" yaml:"start"`

	// Duration is the number of seconds the annotation adds to the clock.
	Duration *big.Int `json:"duration" yaml:"duration"`

	// Display is Start rendered as M:SS, as written back into the line.
	Display string `json:"display" yaml:"display"`

	// Label is any text following the closing parenthesis, trimmed.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}
