package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"studyspaces/internal/domain"
	"studyspaces/internal/normalize"
)

func fallTerm() domain.Term {
	return domain.Term{Year: "2025", Label: "fall"}
}

// TestAggregator_twoMeetingsSameRoom verifies two courses meeting in the
// same room accumulate into one record with all five weekday keys present,
// appended slots, and both courses listed.
func TestAggregator_twoMeetingsSameRoom(t *testing.T) {
	agg := normalize.NewAggregator(fallTerm())

	require.True(t, agg.Add("CS 101", domain.RawMeeting{
		Time: "08:00AM - 08:50AM", Days: "MWF", Location: "Wohlers Hall 241",
	}))
	require.True(t, agg.Add("CS 225", domain.RawMeeting{
		Time: "09:00AM - 09:50AM", Days: "MW", Location: "Wohlers Hall 241",
	}))

	records := agg.Finalize()
	require.Len(t, records, 1)

	rec := records[0]
	require.Equal(t, "Wohlers Hall", rec.Building)
	require.Equal(t, "241", rec.Room)
	require.Equal(t, "WohlersHall-241", rec.RoomID)
	require.Equal(t, "Fall 2025", rec.Semester)
	require.Equal(t, []string{"CS 101", "CS 225"}, rec.Courses)

	require.Len(t, rec.Usage, 5)
	require.Equal(t, []domain.TimeSlot{
		{Start: "08:00", End: "08:50"},
		{Start: "09:00", End: "09:50"},
	}, rec.Usage["Monday"])
	require.Equal(t, []domain.TimeSlot{
		{Start: "08:00", End: "08:50"},
		{Start: "09:00", End: "09:50"},
	}, rec.Usage["Wednesday"])
	require.Equal(t, []domain.TimeSlot{
		{Start: "08:00", End: "08:50"},
	}, rec.Usage["Friday"])
	require.Empty(t, rec.Usage["Tuesday"])
	require.Empty(t, rec.Usage["Thursday"])
}

// TestAggregator_unsplittableLocationDropped verifies a meeting whose
// location yields no room contributes nothing and reports false.
func TestAggregator_unsplittableLocationDropped(t *testing.T) {
	agg := normalize.NewAggregator(fallTerm())

	require.False(t, agg.Add("CS 101", domain.RawMeeting{
		Time: "08:00AM - 08:50AM", Days: "MWF", Location: "Wohlers Hall",
	}))
	require.Empty(t, agg.Finalize())
}

// TestAggregator_unparseableTimeStillRegistersCourse verifies an accepted
// meeting with a garbage time range registers the course against the room
// while contributing no slots.
func TestAggregator_unparseableTimeStillRegistersCourse(t *testing.T) {
	agg := normalize.NewAggregator(fallTerm())

	require.True(t, agg.Add("MUS 130", domain.RawMeeting{
		Time: "ARRANGED", Days: "MWF", Location: "Music Building 100",
	}))

	records := agg.Finalize()
	require.Len(t, records, 1)
	require.Equal(t, []string{"MUS 130"}, records[0].Courses)
	for _, day := range []string{"Monday", "Wednesday", "Friday"} {
		require.Empty(t, records[0].Usage[day])
	}
}

// TestAggregator_duplicateSlotsKept verifies the aggregation pass performs
// no deduplication: identical contributions append twice.
func TestAggregator_duplicateSlotsKept(t *testing.T) {
	agg := normalize.NewAggregator(fallTerm())
	m := domain.RawMeeting{Time: "10:00AM - 10:50AM", Days: "T", Location: "Siebel Center 1404"}

	require.True(t, agg.Add("CS 374", m))
	require.True(t, agg.Add("CS 374", m))

	records := agg.Finalize()
	require.Len(t, records, 1)
	require.Len(t, records[0].Usage["Tuesday"], 2)
	require.Equal(t, []string{"CS 374"}, records[0].Courses)
}

// TestAggregator_noRecognizedWeekdaysContributesNothing verifies a meeting
// whose days code survives the content filter but contains no recognized
// weekday letters (weekend sections) creates no record at all — not even a
// course registration.
func TestAggregator_noRecognizedWeekdaysContributesNothing(t *testing.T) {
	weekend := domain.RawMeeting{Time: "09:00AM - 10:20AM", Days: "SU", Location: "Wohlers Hall 241"}
	_, accepted := normalize.FilterMeeting(weekend)
	require.True(t, accepted, "weekend sections pass the content filter")

	agg := normalize.NewAggregator(fallTerm())
	require.False(t, agg.Add("BADM 310", weekend))
	require.False(t, agg.Add("MBA 541", domain.RawMeeting{
		Time: "08:00AM - 11:50AM", Days: "S", Location: "Wohlers Hall 241",
	}))
	require.Empty(t, agg.Finalize())
}

// TestAggregator_deterministic verifies two independent aggregations of the
// same input produce identical records, including per-weekday slot order.
func TestAggregator_deterministic(t *testing.T) {
	meetings := []struct {
		course string
		m      domain.RawMeeting
	}{
		{"CS 101", domain.RawMeeting{Time: "08:00AM - 08:50AM", Days: "MWF", Location: "Wohlers Hall 241"}},
		{"CS 225", domain.RawMeeting{Time: "09:00AM - 09:50AM", Days: "TR", Location: "Siebel Center 1404"}},
		{"CS 374", domain.RawMeeting{Time: "10:00AM - 10:50AM", Days: "MW", Location: "Wohlers Hall 241"}},
	}

	first := normalize.NewAggregator(fallTerm())
	second := normalize.NewAggregator(fallTerm())
	for _, mt := range meetings {
		first.Add(mt.course, mt.m)
		second.Add(mt.course, mt.m)
	}

	require.Equal(t, first.Finalize(), second.Finalize())
}

// TestAggregator_finalizeOrdersByBuildingRoom verifies Finalize returns
// records sorted by building then room.
func TestAggregator_finalizeOrdersByBuildingRoom(t *testing.T) {
	agg := normalize.NewAggregator(fallTerm())

	agg.Add("C", domain.RawMeeting{Time: "08:00AM - 08:50AM", Days: "M", Location: "Siebel Center 1404"})
	agg.Add("A", domain.RawMeeting{Time: "08:00AM - 08:50AM", Days: "M", Location: "Altgeld Hall 314"})
	agg.Add("B", domain.RawMeeting{Time: "08:00AM - 08:50AM", Days: "M", Location: "Altgeld Hall 141"})

	records := agg.Finalize()
	require.Len(t, records, 3)
	require.Equal(t, "Altgeld Hall", records[0].Building)
	require.Equal(t, "141", records[0].Room)
	require.Equal(t, "314", records[1].Room)
	require.Equal(t, "Siebel Center", records[2].Building)
}
