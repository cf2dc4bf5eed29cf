// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/deck-tools/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		line string
		want types.LineKind
	}{
		{"^ (0:00, 1:30) intro\n", types.LineTimed},
		{"^ (12:7, 0:45)", types.LineTimed},
		{"^ (0:00, 0:00)\r\n", types.LineTimed},
		{"^ (99999999999999999999:00, 0:30)\n", types.LineTimed},
		{"^ (0:00, 99999999999999999999:00) x\n", types.LineTimed},
		{"^ (1:2, abc)\n", types.LineMalformedTimed},
		{"^ (1:30)\n", types.LineMalformedTimed},
		{"^ (1:30 - 2:00)\n", types.LineMalformedTimed},
		{"^ (-1:00, 0:30)\n", types.LineMalformedTimed},
		{"^ speaker note\n", types.LineMarker},
		{"^(0:00, 1:00)\n", types.LineMarker},
		{"autoscale: true\n", types.LineMarker},
		{"# Slide title\n", types.LinePlain},
		{" ^ (0:00, 1:00)\n", types.LinePlain},
		{"text autoscale: true\n", types.LinePlain},
		{"\n", types.LinePlain},
		{"", types.LinePlain},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			kind, _ := Classify(tt.line)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestClassifyReturnsParsedFields(t *testing.T) {
	kind, timed := Classify("^ (3:05, 1:30) intro\n")
	require.Equal(t, types.LineTimed, kind)
	assert.Equal(t, "90", timed.Duration().String())
	assert.Equal(t, "intro", timed.Label)

	kind, timed = Classify("^ (1:2, abc)\n")
	assert.Equal(t, types.LineMalformedTimed, kind)
	assert.Nil(t, timed.EndMinutes)
}

func TestParseTimed(t *testing.T) {
	line := "^ (3:05, 1:30) intro to the topic\n"
	got, err := ParseTimed(line)
	require.NoError(t, err)

	assert.Equal(t, "3", got.StartMinutes.String())
	assert.Equal(t, "5", got.StartSeconds.String())
	assert.Equal(t, "1", got.EndMinutes.String())
	assert.Equal(t, "30", got.EndSeconds.String())
	assert.Equal(t, "3:05", line[got.StartFrom:got.StartTo])
	assert.Equal(t, "intro to the topic", got.Label)
	assert.Equal(t, "90", got.Duration().String())
}

func TestParseTimedDurationIgnoresStart(t *testing.T) {
	got, err := ParseTimed("^ (10:00, 0:45)")
	require.NoError(t, err)
	assert.Equal(t, "45", got.Duration().String())
}

func TestParseTimedWideFields(t *testing.T) {
	got, err := ParseTimed("^ (0:00, 99999999999999999999:00) x")
	require.NoError(t, err)
	assert.Equal(t, "5999999999999999999940", got.Duration().String())
}

func TestParseTimedErrors(t *testing.T) {
	_, err := ParseTimed("plain text")
	assert.ErrorIs(t, err, ErrNotTimed)

	_, err = ParseTimed("^ (1:2, abc)")
	assert.ErrorIs(t, err, ErrNotTimed)
}

func TestIsMarker(t *testing.T) {
	assert.True(t, IsMarker("^ anything"))
	assert.True(t, IsMarker("^"))
	assert.True(t, IsMarker("autoscale: true"))
	assert.False(t, IsMarker("autoscale true"))
	assert.False(t, IsMarker(" ^ indented"))
	assert.False(t, IsMarker(""))
}
