// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/deck-tools/pkg/types"
)

func sampleExport() Export {
	return Export{
		Total:        big.NewInt(135),
		TotalDisplay: "2:15",
		Segments: []types.Segment{
			{Line: 1, Start: big.NewInt(0), Duration: big.NewInt(90), Display: "0:00", Label: "intro"},
			{Line: 3, Start: big.NewInt(90), Duration: big.NewInt(45), Display: "1:30"},
		},
		Diagnostics: []types.Diagnostic{{Line: 2, Content: "^ (1:2, abc)"}},
	}
}

func assertSameExport(t *testing.T, want, got Export) {
	t.Helper()
	require.NotNil(t, got.Total)
	assert.Equal(t, want.Total.String(), got.Total.String())
	assert.Equal(t, want.TotalDisplay, got.TotalDisplay)
	require.Len(t, got.Segments, len(want.Segments))
	for i := range want.Segments {
		w, g := want.Segments[i], got.Segments[i]
		assert.Equal(t, w.Line, g.Line)
		assert.Equal(t, w.Start.String(), g.Start.String())
		assert.Equal(t, w.Duration.String(), g.Duration.String())
		assert.Equal(t, w.Display, g.Display)
		assert.Equal(t, w.Label, g.Label)
	}
	assert.Equal(t, want.Diagnostics, got.Diagnostics)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleExport(), types.ScheduleYAML))

	assert.Contains(t, buf.String(), "total_display:")

	var got Export
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assertSameExport(t, sampleExport(), got)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleExport(), types.ScheduleJSON))

	var got Export
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assertSameExport(t, sampleExport(), got)
}

func TestWriteJSONWideTotal(t *testing.T) {
	total, _ := new(big.Int).SetString("12000000000000000010", 10)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Export{Total: total, TotalDisplay: "200000000000000000:10"}, types.ScheduleJSON))
	assert.Contains(t, buf.String(), `"total": 12000000000000000010`)
}

func TestWriteNone(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleExport(), types.ScheduleNone))
	assert.Empty(t, buf.String())
}

func TestWriteEmptySegments(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Export{Total: new(big.Int), TotalDisplay: "0:00"}, types.ScheduleJSON))
	assert.Contains(t, buf.String(), `"segments": []`)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    types.ScheduleFormat
		wantErr bool
	}{
		{"", types.ScheduleNone, false},
		{"yaml", types.ScheduleYAML, false},
		{"json", types.ScheduleJSON, false},
		{"xml", types.ScheduleNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
