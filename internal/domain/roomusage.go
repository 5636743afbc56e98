// Package domain contains the core data types for the study spaces system.
// This package is the dependency hub — the normalization engine, repo,
// service, and handler layers all build on these types.
package domain

import "strings"

// Weekdays is the canonical ordered set of teaching days. Every RoomUsage
// record carries exactly these five keys in its Usage map, even when empty.
var Weekdays = [5]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// TimeSlot is one contiguous occupied interval in zero-padded 24-hour form.
// No ordering between Start and End is enforced: the catalog contains literal
// end-before-start artifacts, and they are preserved rather than corrected.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// RoomKey identifies one physical room across the whole system.
// Comparison is case-sensitive.
type RoomKey struct {
	Building string
	Room     string
}

// RoomUsage is the per-room occupancy record produced by aggregation and
// merging. RoomID and Semester are derived values and are never set
// independently of Building, Room, and the term metadata.
type RoomUsage struct {
	Building string                `json:"building"`
	Room     string                `json:"room"`
	RoomID   string                `json:"room_id"`
	Semester string                `json:"semester"`
	Usage    map[string][]TimeSlot `json:"usage"`
	Courses  []string              `json:"courses"`
}

// Key returns the RoomKey identity of the record.
func (r RoomUsage) Key() RoomKey {
	return RoomKey{Building: r.Building, Room: r.Room}
}

// NewWeekdayUsage returns a usage map with all five weekdays present and empty.
func NewWeekdayUsage() map[string][]TimeSlot {
	usage := make(map[string][]TimeSlot, len(Weekdays))
	for _, day := range Weekdays {
		usage[day] = []TimeSlot{}
	}
	return usage
}

// DeriveRoomID builds the canonical room identifier: the building name with
// all spaces removed, joined to the room with a hyphen ("WohlersHall-241").
func DeriveRoomID(building, room string) string {
	return strings.ReplaceAll(building, " ", "") + "-" + room
}

// IsWeekday reports whether day is one of the five canonical weekday names.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
