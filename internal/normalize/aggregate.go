package normalize

import (
	"sort"

	"studyspaces/internal/domain"
)

// roomBuilder accumulates one room's usage during a department pass. The
// courses set collapses repeated contributions from multi-section courses.
type roomBuilder struct {
	usage   map[string][]domain.TimeSlot
	courses map[string]struct{}
}

// Aggregator builds per-room usage records for a single department and term.
// Add is pure accumulation: slots are appended in encounter order with no
// sorting and no deduplication, which is the Merger's job at finalize time.
// Not safe for concurrent use; each department run owns its own Aggregator.
type Aggregator struct {
	term    domain.Term
	records map[domain.RoomKey]*roomBuilder
}

// NewAggregator returns an empty Aggregator for the given term.
func NewAggregator(term domain.Term) *Aggregator {
	return &Aggregator{
		term:    term,
		records: make(map[domain.RoomKey]*roomBuilder),
	}
}

// Add folds one accepted meeting into the aggregate. It reports false when
// the meeting contributes nothing: the location cannot be split into a
// building and room, or the days code yields no recognized weekdays
// (weekend sections). Only a meeting with at least one weekday creates the
// room record and registers the course. An unparseable time range still
// registers the course against the room; only the slot contribution is
// skipped.
func (a *Aggregator) Add(course string, m domain.RawMeeting) bool {
	building, room := SplitLocation(m.Location)
	if building == "" || room == "" {
		return false
	}

	days := ParseWeekdays(m.Days)
	if len(days) == 0 {
		return false
	}

	key := domain.RoomKey{Building: building, Room: room}
	b, ok := a.records[key]
	if !ok {
		b = &roomBuilder{
			usage:   domain.NewWeekdayUsage(),
			courses: make(map[string]struct{}),
		}
		a.records[key] = b
	}
	b.courses[course] = struct{}{}

	slot, ok := ParseTimeRange(m.Time)
	if !ok {
		return true
	}
	for _, day := range days {
		b.usage[day] = append(b.usage[day], slot)
	}
	return true
}

// Finalize returns the accumulated records ordered by (building, room).
// Slots keep their raw encounter order; courses are sorted and deduplicated.
func (a *Aggregator) Finalize() []domain.RoomUsage {
	out := make([]domain.RoomUsage, 0, len(a.records))
	for key, b := range a.records {
		out = append(out, domain.RoomUsage{
			Building: key.Building,
			Room:     key.Room,
			RoomID:   domain.DeriveRoomID(key.Building, key.Room),
			Semester: a.term.Semester(),
			Usage:    b.usage,
			Courses:  sortedCourses(b.courses),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Building != out[j].Building {
			return out[i].Building < out[j].Building
		}
		return out[i].Room < out[j].Room
	})
	return out
}

func sortedCourses(set map[string]struct{}) []string {
	courses := make([]string, 0, len(set))
	for c := range set {
		courses = append(courses, c)
	}
	sort.Strings(courses)
	return courses
}
