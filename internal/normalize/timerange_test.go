package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"studyspaces/internal/domain"
	"studyspaces/internal/normalize"
)

// TestParseTimeRange_basic verifies the common morning range converts to
// zero-padded 24-hour form.
func TestParseTimeRange_basic(t *testing.T) {
	slot, ok := normalize.ParseTimeRange("08:00AM - 08:50AM")

	require.True(t, ok)
	require.Equal(t, domain.TimeSlot{Start: "08:00", End: "08:50"}, slot)
}

// TestParseTimeRange_pmConversion verifies PM hours other than 12 gain 12.
func TestParseTimeRange_pmConversion(t *testing.T) {
	slot, ok := normalize.ParseTimeRange("1:00PM - 2:15PM")

	require.True(t, ok)
	require.Equal(t, domain.TimeSlot{Start: "13:00", End: "14:15"}, slot)
}

// TestParseTimeRange_noonAndMidnight verifies the hour-12 special cases:
// 12:00PM stays noon and 12:00AM becomes midnight.
func TestParseTimeRange_noonAndMidnight(t *testing.T) {
	slot, ok := normalize.ParseTimeRange("12:00PM - 12:50PM")
	require.True(t, ok)
	require.Equal(t, domain.TimeSlot{Start: "12:00", End: "12:50"}, slot)

	slot, ok = normalize.ParseTimeRange("12:00AM - 12:50AM")
	require.True(t, ok)
	require.Equal(t, domain.TimeSlot{Start: "00:00", End: "00:50"}, slot)
}

// TestParseTimeRange_codePrefix verifies a leading 4-digit meeting code is
// stripped before parsing.
func TestParseTimeRange_codePrefix(t *testing.T) {
	slot, ok := normalize.ParseTimeRange("0800 08:00AM - 08:50AM")

	require.True(t, ok)
	require.Equal(t, domain.TimeSlot{Start: "08:00", End: "08:50"}, slot)
}

// TestParseTimeRange_irregularSpacing verifies spacing around the dash does
// not matter, including no spacing at all.
func TestParseTimeRange_irregularSpacing(t *testing.T) {
	for _, in := range []string{
		"08:00AM-08:50AM",
		"08:00AM  -  08:50AM",
		" 08:00AM - 08:50AM ",
	} {
		slot, ok := normalize.ParseTimeRange(in)
		require.True(t, ok, "input %q", in)
		require.Equal(t, domain.TimeSlot{Start: "08:00", End: "08:50"}, slot, "input %q", in)
	}
}

// TestParseTimeRange_malformed verifies unparseable strings report ok=false.
func TestParseTimeRange_malformed(t *testing.T) {
	for _, in := range []string{
		"",
		"ARRANGED",
		"n.a.",
		"08:00AM",
		"08:00AM 08:50AM",
		"8AM - 9AM",
	} {
		_, ok := normalize.ParseTimeRange(in)
		require.False(t, ok, "input %q", in)
	}
}

// TestFlattenTimeRange_match verifies a matching range flattens to the
// 24-hour "HH:MM-HH:MM" form.
func TestFlattenTimeRange_match(t *testing.T) {
	require.Equal(t, "09:30-10:45", normalize.FlattenTimeRange("09:30AM - 10:45AM"))
	require.Equal(t, "14:00-15:20", normalize.FlattenTimeRange("02:00PM-03:20PM"))
}

// TestFlattenTimeRange_noMatchPassesThrough verifies non-matching input is
// returned unchanged, including strings with a leading code token: flatten
// has no prefix handling, only the slot parser does.
func TestFlattenTimeRange_noMatchPassesThrough(t *testing.T) {
	require.Equal(t, "ARRANGED", normalize.FlattenTimeRange("ARRANGED"))
	require.Equal(t, "0800 08:00AM - 08:50AM", normalize.FlattenTimeRange("0800 08:00AM - 08:50AM"))
}
