package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"studyspaces/internal/normalize"
)

// TestParseWeekdays verifies letter codes expand to ordered weekday names,
// unknown letters are dropped, and duplicates are preserved.
func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		code string
		want []string
	}{
		{"MWF", []string{"Monday", "Wednesday", "Friday"}},
		{"TR", []string{"Tuesday", "Thursday"}},
		{"M", []string{"Monday"}},
		{"MTWRF", []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}},
		{"XYZ", []string{}},
		{"", []string{}},
		{"MSU", []string{"Monday"}},
		{"MM", []string{"Monday", "Monday"}},
		{" MW ", []string{"Monday", "Wednesday"}},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, normalize.ParseWeekdays(tt.code), "code %q", tt.code)
	}
}
