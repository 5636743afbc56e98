package domain

// Room availability statuses reported by the query API.
const (
	StatusOpen     = "OPEN"
	StatusOccupied = "OCCUPIED"
)

// RoomStatus is one room's availability at a queried day and time.
// AvailableUntil carries the start of the next occupied slot when the room
// is open, or stays empty when the room is free for the rest of the day.
// OccupiedRanges lists the day's occupied intervals for rooms that have any.
type RoomStatus struct {
	Room           string     `json:"room"`
	Status         string     `json:"status"`
	AvailableUntil string     `json:"available_until,omitempty"`
	OccupiedRanges []TimeSlot `json:"occupied_ranges,omitempty"`
}
