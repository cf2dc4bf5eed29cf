// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package schedule prints the timing schedule computed while retiming a deck.
package schedule

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deck-tools/pkg/types"
)

// Export is the document written for a schedule. Second counts are
// unbounded integers.
type Export struct {
	Total        *big.Int           `json:"total" yaml:"total"`
	TotalDisplay string             `json:"total_display" yaml:"total_display"`
	Segments     []types.Segment    `json:"segments" yaml:"segments"`
	Diagnostics  []types.Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// ParseFormat validates a --schedule flag value.
func ParseFormat(s string) (types.ScheduleFormat, error) {
	switch f := types.ScheduleFormat(s); f {
	case types.ScheduleNone, types.ScheduleYAML, types.ScheduleJSON:
		return f, nil
	default:
		return types.ScheduleNone, fmt.Errorf("unsupported schedule format %q: use yaml or json", s)
	}
}

// Write encodes doc to w in the given format. ScheduleNone writes nothing.
func Write(w io.Writer, doc Export, format types.ScheduleFormat) error {
	if doc.Segments == nil {
		doc.Segments = []types.Segment{}
	}

	switch format {
	case types.ScheduleNone:
		return nil
	case types.ScheduleYAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	case types.ScheduleJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported schedule format %q: use yaml or json", format)
	}
}
