package normalize

import (
	"sort"

	"studyspaces/internal/domain"
)

// Merger combines room-usage collections from independently aggregated
// departments (and a prior master) into one canonical collection. Fold is
// cheap concatenation; all dedup and ordering happens once, in Finalize.
// Folding the same collection twice is harmless: duplicate slots collapse by
// (start, end) equality. Not safe for concurrent use.
type Merger struct {
	records map[domain.RoomKey]*mergeBuilder
}

type mergeBuilder struct {
	roomID   string
	semester string
	usage    map[string][]domain.TimeSlot
	courses  map[string]struct{}
}

// NewMerger returns an empty Merger.
func NewMerger() *Merger {
	return &Merger{records: make(map[domain.RoomKey]*mergeBuilder)}
}

// Fold absorbs one collection. For a room seen before, slots are appended
// per weekday and courses are unioned; room_id and semester keep the value
// from the first collection that supplied one. Usage keys outside the
// canonical weekday set are ignored, so a stray key in a hand-edited
// partition file cannot widen the merged maps.
func (m *Merger) Fold(records []domain.RoomUsage) {
	for _, rec := range records {
		key := rec.Key()
		b, ok := m.records[key]
		if !ok {
			b = &mergeBuilder{
				usage:   domain.NewWeekdayUsage(),
				courses: make(map[string]struct{}),
			}
			m.records[key] = b
		}
		if b.roomID == "" {
			b.roomID = rec.RoomID
		}
		if b.semester == "" {
			b.semester = rec.Semester
		}
		for _, day := range domain.Weekdays {
			if slots := rec.Usage[day]; len(slots) > 0 {
				b.usage[day] = append(b.usage[day], slots...)
			}
		}
		for _, c := range rec.Courses {
			b.courses[c] = struct{}{}
		}
	}
}

// Finalize deduplicates and orders the merged collection: per weekday, slots
// collapse by (start, end) equality keeping the first occurrence, then sort
// by start time; courses are sorted; records are ordered by (building, room).
func (m *Merger) Finalize() []domain.RoomUsage {
	out := make([]domain.RoomUsage, 0, len(m.records))
	for key, b := range m.records {
		usage := domain.NewWeekdayUsage()
		for day, slots := range b.usage {
			usage[day] = dedupSortSlots(slots)
		}
		out = append(out, domain.RoomUsage{
			Building: key.Building,
			Room:     key.Room,
			RoomID:   b.roomID,
			Semester: b.semester,
			Usage:    usage,
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

// dedupSortSlots collapses slots equal on (start, end), keeping the first
// occurrence, then orders by start. The stable sort preserves encounter
// order among slots sharing a start time.
func dedupSortSlots(slots []domain.TimeSlot) []domain.TimeSlot {
	seen := make(map[domain.TimeSlot]struct{}, len(slots))
	deduped := make([]domain.TimeSlot, 0, len(slots))
	for _, s := range slots {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		deduped = append(deduped, s)
	}
	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Start < deduped[j].Start
	})
	return deduped
}
