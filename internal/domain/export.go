package domain

// ExportRow is a single row in the flat occupancy export: one row per
// (room, weekday, slot), with room fields repeated on every row. Rooms with
// an empty day contribute no rows for that day.
type ExportRow struct {
	Building string   `json:"building"`
	Room     string   `json:"room"`
	RoomID   string   `json:"room_id"`
	Semester string   `json:"semester"`
	Weekday  string   `json:"weekday"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Courses  []string `json:"courses"`
}
