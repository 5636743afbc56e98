package normalize

import "strings"

// dayLetters maps the catalog's single-letter weekday codes to canonical
// names. Thursday is "R" so that Tuesday keeps "T".
var dayLetters = map[rune]string{
	'M': "Monday",
	'T': "Tuesday",
	'W': "Wednesday",
	'R': "Thursday",
	'F': "Friday",
}

// ParseWeekdays expands a compact code like "MWF" into ordered weekday
// names. Unrecognized characters are dropped silently. Repeated letters are
// kept as-is: deduplication happens only at merge time, by (start, end) slot
// equality.
func ParseWeekdays(code string) []string {
	days := make([]string, 0, len(code))
	for _, r := range strings.TrimSpace(code) {
		if day, ok := dayLetters[r]; ok {
			days = append(days, day)
		}
	}
	return days
}
