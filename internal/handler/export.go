package handler

import (
	"encoding/csv"
	"net/http"
	"strings"
	"time"

	"studyspaces/internal/domain"
)

// csvHeaders is the column order of the CSV export.
var csvHeaders = []string{"building", "room", "room_id", "semester", "weekday", "start", "end", "courses"}

// GetExport handles GET /api/export?format=csv|json (json by default).
// It streams the flat (room, weekday, slot) rows of the whole collection.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		writeJSON(w, http.StatusOK, rows)
	case "csv":
		writeCSV(w, rows)
	default:
		requestError(w, "format must be json or csv")
	}
}

func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="room_usage.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeaders)
	for _, row := range rows {
		_ = cw.Write([]string{
			row.Building,
			row.Room,
			row.RoomID,
			row.Semester,
			row.Weekday,
			row.Start,
			row.End,
			strings.Join(row.Courses, "|"),
		})
	}
	cw.Flush()
}

// GetRoomCalendar handles GET /api/rooms/{building}/{room}/calendar.ics.
// It renders the room's weekly occupancy as an iCalendar feed anchored to
// the current week.
func (s *Server) GetRoomCalendar(w http.ResponseWriter, r *http.Request) {
	building, err := pathParam(r, "building")
	if err != nil {
		requestError(w, "malformed building path segment")
		return
	}
	room, err := pathParam(r, "room")
	if err != nil {
		requestError(w, "malformed room path segment")
		return
	}
	cal, err := s.export.RoomCalendar(r.Context(), building, room, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/calendar")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cal))
}
