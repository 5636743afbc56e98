package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"studyspaces/internal/domain"
	"studyspaces/internal/normalize"
)

// TestFilterMeeting_accepted verifies a well-formed meeting passes the
// content rules even when its time range is garbage: time parseability is
// not a filter concern.
func TestFilterMeeting_accepted(t *testing.T) {
	reason, ok := normalize.FilterMeeting(domain.RawMeeting{
		Time:     "ARRANGED",
		Days:     "MWF",
		Location: "Wohlers Hall 241",
	})

	require.True(t, ok)
	require.Empty(t, reason)
}

// TestFilterMeeting_rejections verifies each rejection rule fires with its
// exact audit reason, case-insensitively.
func TestFilterMeeting_rejections(t *testing.T) {
	tests := []struct {
		name    string
		meeting domain.RawMeeting
		reason  string
	}{
		{
			name:    "pending location",
			meeting: domain.RawMeeting{Days: "MWF", Location: "Location Pending"},
			reason:  "Location contains 'pending'",
		},
		{
			name:    "illini center",
			meeting: domain.RawMeeting{Days: "T", Location: "ILLINI CENTER 200"},
			reason:  "Location contains 'Illini Center'",
		},
		{
			name:    "na days",
			meeting: domain.RawMeeting{Days: "n.a.", Location: "Wohlers Hall 241"},
			reason:  "Days is n.a./N/A or empty",
		},
		{
			name:    "empty days",
			meeting: domain.RawMeeting{Days: "  ", Location: "Wohlers Hall 241"},
			reason:  "Days is n.a./N/A or empty",
		},
		{
			name:    "na location",
			meeting: domain.RawMeeting{Days: "MWF", Location: "N/A"},
			reason:  "Location is n.a./N/A or empty",
		},
		{
			name:    "empty location",
			meeting: domain.RawMeeting{Days: "MWF", Location: ""},
			reason:  "Location is n.a./N/A or empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason, ok := normalize.FilterMeeting(tt.meeting)
			require.False(t, ok)
			require.Equal(t, tt.reason, reason)
		})
	}
}

// TestFilterMeeting_ruleOrder verifies the first matching rule wins: a
// pending location with empty days reports the pending reason.
func TestFilterMeeting_ruleOrder(t *testing.T) {
	reason, ok := normalize.FilterMeeting(domain.RawMeeting{
		Days:     "",
		Location: "pending",
	})

	require.False(t, ok)
	require.Equal(t, "Location contains 'pending'", reason)
}
