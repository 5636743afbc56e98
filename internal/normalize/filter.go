package normalize

import (
	"strings"

	"studyspaces/internal/domain"
)

// rejectionRule pairs a predicate with the human-readable reason recorded
// when it matches.
type rejectionRule struct {
	reason string
	match  func(m domain.RawMeeting) bool
}

// rejectionRules is the content policy for raw meetings, evaluated in order
// with the first match winning. The rules inspect only the raw strings:
// parse failures are handled downstream so that "structurally disallowed"
// and "failed to parse" stay distinct outcomes.
var rejectionRules = []rejectionRule{
	{
		reason: "Location contains 'pending'",
		match:  func(m domain.RawMeeting) bool { return containsFold(m.Location, "pending") },
	},
	{
		reason: "Location contains 'Illini Center'",
		match:  func(m domain.RawMeeting) bool { return containsFold(m.Location, "illini center") },
	},
	{
		reason: "Days is n.a./N/A or empty",
		match:  func(m domain.RawMeeting) bool { return emptyOrNA(m.Days) },
	},
	{
		reason: "Location is n.a./N/A or empty",
		match:  func(m domain.RawMeeting) bool { return emptyOrNA(m.Location) },
	},
}

// FilterMeeting classifies a raw meeting record. ok is true when the meeting
// may be aggregated; otherwise reason carries the audit string for the
// rejection record. Rejection is a normal outcome, never an error.
func FilterMeeting(m domain.RawMeeting) (reason string, ok bool) {
	for _, rule := range rejectionRules {
		if rule.match(m) {
			return rule.reason, false
		}
	}
	return "", true
}

// containsFold reports whether s contains substr under case folding.
// substr must already be lowercase.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// emptyOrNA reports whether s is empty or one of the catalog's
// not-applicable sentinels ("n.a." or "n/a", any case).
func emptyOrNA(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n.a.", "n/a":
		return true
	}
	return false
}
