package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCoercion(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want int
	}{
		{"number", `42`, 42},
		{"numeric string", `"17"`, 17},
		{"empty string", `""`, 0},
		{"garbage string", `"abc"`, 0},
		{"null", `null`, 0},
		{"negative", `-5`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s Score
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &s))
			assert.Equal(t, tc.want, s.Int())
		})
	}
}

func TestMarkEntryDecodesFreeformScores(t *testing.T) {
	var entry MarkEntry
	require.NoError(t, json.Unmarshal([]byte(`{"assignment":"88","quiz":null}`), &entry))
	assert.Equal(t, 88, entry.Assignment.Int())
	assert.Equal(t, 0, entry.Quiz.Int())
}

func TestAttendanceMapScanNil(t *testing.T) {
	var m AttendanceMap
	require.NoError(t, m.Scan(nil))
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestAttendanceMapScanBytes(t *testing.T) {
	var m AttendanceMap
	require.NoError(t, m.Scan([]byte(`{"2025-01-10":"Late Came"}`)))
	assert.Equal(t, AttendanceStatusLateCame, m["2025-01-10"])
}

func TestMarksMapRoundTrip(t *testing.T) {
	marks := MarksMap{
		"Golang": {
			"Module 1": {Assignment: 90, Quiz: 80},
		},
	}
	value, err := marks.Value()
	require.NoError(t, err)

	var decoded MarksMap
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, 90, decoded["Golang"]["Module 1"].Assignment.Int())
	assert.Equal(t, 80, decoded["Golang"]["Module 1"].Quiz.Int())
}

func TestNilMapsMarshalAsEmptyObjects(t *testing.T) {
	var attendance AttendanceMap
	value, err := attendance.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(value.([]byte)))

	var marks MarksMap
	value, err = marks.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(value.([]byte)))
}
