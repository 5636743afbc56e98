package normalize

import "strings"

// SplitLocation splits a free-form location such as "Wohlers Hall 241" or
// "241 Wohlers Hall" into a (building, room) pair. A numeric token (dashes
// ignored for the digit test) is taken as the room whether it leads or
// trails; the remaining tokens, joined by single spaces, form the building.
// With no numeric token the whole string is the building and the room stays
// empty.
//
// This is a heuristic. Callers must treat an empty building or room as
// unsplittable and drop the meeting from aggregation.
func SplitLocation(location string) (building, room string) {
	location = strings.TrimSpace(location)
	parts := strings.Fields(location)
	if len(parts) == 0 {
		return "", ""
	}
	if isRoomNumber(parts[0]) {
		return strings.Join(parts[1:], " "), parts[0]
	}
	if last := parts[len(parts)-1]; isRoomNumber(last) {
		return strings.Join(parts[:len(parts)-1], " "), last
	}
	return location, ""
}

// isRoomNumber reports whether tok is a digit sequence once dashes are
// removed (room designators like "21-3" count).
func isRoomNumber(tok string) bool {
	digits := strings.ReplaceAll(tok, "-", "")
	if digits == "" {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
