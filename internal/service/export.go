package service

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"studyspaces/internal/domain"
)

// RoomLister is the slice of the Postgres repository the exports need.
type RoomLister interface {
	All(ctx context.Context) ([]domain.RoomUsage, error)
	GetByRoom(ctx context.Context, building, room string) (domain.RoomUsage, error)
}

// ExportService flattens room-usage records for bulk export and renders
// per-room iCalendar feeds.
type ExportService struct {
	rooms RoomLister
}

// NewExportService constructs an ExportService backed by the provided lister.
func NewExportService(rooms RoomLister) *ExportService {
	return &ExportService{rooms: rooms}
}

// Export returns one row per (room, weekday, slot) across all rooms, rooms
// ordered by building then room, weekdays in Monday..Friday order.
// Always returns a non-nil slice so callers can safely range over it.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	records, err := s.rooms.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(records))
	for _, rec := range records {
		for _, day := range domain.Weekdays {
			for _, slot := range rec.Usage[day] {
				rows = append(rows, domain.ExportRow{
					Building: rec.Building,
					Room:     rec.Room,
					RoomID:   rec.RoomID,
					Semester: rec.Semester,
					Weekday:  day,
					Start:    slot.Start,
					End:      slot.End,
					Courses:  rec.Courses,
				})
			}
		}
	}
	return rows, nil
}

// byDay maps weekday names to the iCalendar BYDAY codes used in weekly
// recurrence rules.
var byDay = map[string]string{
	"Monday":    "MO",
	"Tuesday":   "TU",
	"Wednesday": "WE",
	"Thursday":  "TH",
	"Friday":    "FR",
}

// RoomCalendar renders one room's weekly occupancy as an iCalendar document.
// Each slot becomes a weekly recurring event anchored to the week containing
// weekAnchor.
// Returns domain.ErrNotFound if the room is unknown.
func (s *ExportService) RoomCalendar(ctx context.Context, building, room string, weekAnchor time.Time) (string, error) {
	rec, err := s.rooms.GetByRoom(ctx, building, room)
	if err != nil {
		return "", fmt.Errorf("service.ExportService.RoomCalendar: %w", err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//studyspaces//room occupancy//EN")

	monday := startOfWeek(weekAnchor)
	for i, day := range domain.Weekdays {
		date := monday.AddDate(0, 0, i)
		for _, slot := range rec.Usage[day] {
			uid := fmt.Sprintf("%s-%s-%s-%s@studyspaces", rec.RoomID, day, slot.Start, slot.End)
			event := cal.AddEvent(uid)
			event.SetSummary(fmt.Sprintf("Occupied: %s %s", rec.Building, rec.Room))
			event.SetLocation(fmt.Sprintf("%s %s", rec.Building, rec.Room))
			event.SetStartAt(atClock(date, slot.Start))
			event.SetEndAt(atClock(date, slot.End))
			event.SetDtStampTime(weekAnchor.UTC())
			event.SetProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY;BYDAY="+byDay[day])
		}
	}
	return cal.Serialize(), nil
}

// startOfWeek returns the Monday of the week containing t, at midnight UTC.
func startOfWeek(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 // Monday = 0
	t = t.AddDate(0, 0, -offset)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// atClock places an "HH:MM" clock reading on the given date, UTC.
func atClock(date time.Time, hhmm string) time.Time {
	clock, _ := time.Parse("15:04", hhmm) // stored slots are always valid
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}
