// Package normalize is the normalization and aggregation engine: it turns
// the catalog's irregular time-range, weekday-code, and location strings
// into canonical forms, filters out invalid meeting records, aggregates the
// rest into per-room usage records, and merges aggregates from independently
// processed departments into one master collection.
//
// Everything here is a pure in-memory transformation. No I/O, no shared
// state across calls; the Aggregator and Merger own their accumulation maps
// for the duration of a single run.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"studyspaces/internal/domain"
)

// rangePattern matches a compact 12-hour range like "08:00AM-08:50AM".
// Callers strip spaces before matching, so sloppy separators ("08:00AM  -
// 08:50AM", or a missing space altogether) all reduce to the same form.
var rangePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(AM|PM)-(\d{1,2}):(\d{2})(AM|PM)`)

// codePrefix matches the meeting-code token ("0800 ") some catalog rows
// carry before the actual time range.
var codePrefix = regexp.MustCompile(`^\d{4} `)

// ParseTimeRange converts a textual 12-hour time range into a canonical
// 24-hour TimeSlot. A leading 4-digit code token ("0800 08:00AM - 08:50AM")
// is stripped first. ok is false when the string contains no recognizable
// range; callers skip the slot contribution and keep the rest of the record.
func ParseTimeRange(s string) (slot domain.TimeSlot, ok bool) {
	s = strings.TrimSpace(s)
	if codePrefix.MatchString(s) {
		s = s[5:]
	}
	m := rangePattern.FindStringSubmatch(stripSpaces(s))
	if m == nil {
		return domain.TimeSlot{}, false
	}
	return domain.TimeSlot{
		Start: to24Hour(m[1], m[2], m[3]),
		End:   to24Hour(m[4], m[5], m[6]),
	}, true
}

// FlattenTimeRange converts a 12-hour range into the flat "HH:MM-HH:MM" form
// used for display and range-string deduplication. Unlike ParseTimeRange it
// does not tolerate a leading code token; when the pattern does not match,
// the input is returned unchanged.
func FlattenTimeRange(s string) string {
	m := rangePattern.FindStringSubmatch(stripSpaces(s))
	if m == nil {
		return s
	}
	return to24Hour(m[1], m[2], m[3]) + "-" + to24Hour(m[4], m[5], m[6])
}

// to24Hour converts one 12-hour clock component to zero-padded 24-hour form.
// Hour 12 is the special case: 12AM is midnight, 12PM stays noon.
func to24Hour(hh, mm, ampm string) string {
	h, _ := strconv.Atoi(hh) // guaranteed numeric by rangePattern
	if ampm == "PM" && h != 12 {
		h += 12
	}
	if ampm == "AM" && h == 12 {
		h = 0
	}
	return fmt.Sprintf("%02d:%s", h, mm)
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
