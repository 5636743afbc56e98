package domain

import "strings"

// Term identifies one academic term: a 4-digit year and a lowercase label
// such as "fall", "spring", or "summer". Partitions and master files are
// always scoped to a single term.
type Term struct {
	Year  string
	Label string
}

// Semester returns the display form stored on RoomUsage records:
// the capitalized label, a space, then the year ("Fall 2025").
func (t Term) Semester() string {
	label := strings.ToLower(strings.TrimSpace(t.Label))
	if label == "" {
		return t.Year
	}
	return strings.ToUpper(label[:1]) + label[1:] + " " + t.Year
}
