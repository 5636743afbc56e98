package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"studyspaces/internal/domain"
)

// RoomReader is the slice of the Postgres repository the availability
// queries need.
type RoomReader interface {
	ListByBuilding(ctx context.Context, building string) ([]domain.RoomUsage, error)
	GetByRoom(ctx context.Context, building, room string) (domain.RoomUsage, error)
	Buildings(ctx context.Context) ([]string, error)
}

// AvailabilityService answers point-in-time occupancy questions against the
// merged room-usage records. A room is occupied at instant t when some slot
// satisfies start <= t < end; a room with no slots that day is free.
type AvailabilityService struct {
	rooms RoomReader
}

// NewAvailabilityService constructs an AvailabilityService backed by the
// provided reader.
func NewAvailabilityService(rooms RoomReader) *AvailabilityService {
	return &AvailabilityService{rooms: rooms}
}

// AvailableRooms returns the rooms of one building that are free on the
// given weekday at the given "HH:MM" instant.
// Returns domain.ErrValidation for an unknown weekday or malformed time.
func (s *AvailabilityService) AvailableRooms(ctx context.Context, building, day, at string) ([]domain.RoomUsage, error) {
	day, at, err := normalizeQuery(day, at)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.ListByBuilding(ctx, building)
	if err != nil {
		return nil, fmt.Errorf("service.AvailabilityService.AvailableRooms: %w", err)
	}

	available := make([]domain.RoomUsage, 0, len(rooms))
	for _, r := range rooms {
		if !occupiedAt(r.Usage[day], at) {
			available = append(available, r)
		}
	}
	return available, nil
}

// RoomsWithStatus returns every room of one building with its OPEN/OCCUPIED
// status at the given instant, the time it next becomes occupied, and the
// day's occupied ranges.
// Returns domain.ErrValidation for an unknown weekday or malformed time.
func (s *AvailabilityService) RoomsWithStatus(ctx context.Context, building, day, at string) ([]domain.RoomStatus, error) {
	day, at, err := normalizeQuery(day, at)
	if err != nil {
		return nil, err
	}

	rooms, err := s.rooms.ListByBuilding(ctx, building)
	if err != nil {
		return nil, fmt.Errorf("service.AvailabilityService.RoomsWithStatus: %w", err)
	}

	statuses := make([]domain.RoomStatus, 0, len(rooms))
	for _, r := range rooms {
		statuses = append(statuses, statusAt(r, day, at))
	}
	return statuses, nil
}

// Buildings returns all known building names, sorted.
// Always returns a non-nil slice so callers can safely range over it.
func (s *AvailabilityService) Buildings(ctx context.Context) ([]string, error) {
	buildings, err := s.rooms.Buildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.AvailabilityService.Buildings: %w", err)
	}
	if buildings == nil {
		return []string{}, nil
	}
	return buildings, nil
}

// RoomByName returns one room's full usage record.
// Returns domain.ErrNotFound if the room is unknown.
func (s *AvailabilityService) RoomByName(ctx context.Context, building, room string) (domain.RoomUsage, error) {
	rec, err := s.rooms.GetByRoom(ctx, strings.TrimSpace(building), strings.TrimSpace(room))
	if err != nil {
		return domain.RoomUsage{}, fmt.Errorf("service.AvailabilityService.RoomByName: %w", err)
	}
	return rec, nil
}

// normalizeQuery validates the weekday and "HH:MM" instant of a query.
// The weekday is matched case-insensitively and returned in canonical form.
func normalizeQuery(day, at string) (string, string, error) {
	canonical, ok := canonicalWeekday(day)
	if !ok {
		return "", "", fmt.Errorf("%w: day must be a weekday name, got %q", domain.ErrValidation, day)
	}
	// Zero-padded "HH:MM" only: time.Parse alone accepts "8:30", which would
	// break the lexicographic comparison against stored slots.
	if len(at) != 5 || at[2] != ':' {
		return "", "", fmt.Errorf("%w: time must be HH:MM, got %q", domain.ErrValidation, at)
	}
	if _, err := time.Parse("15:04", at); err != nil {
		return "", "", fmt.Errorf("%w: time must be HH:MM, got %q", domain.ErrValidation, at)
	}
	return canonical, at, nil
}

func canonicalWeekday(day string) (string, bool) {
	day = strings.TrimSpace(day)
	for _, d := range domain.Weekdays {
		if strings.EqualFold(day, d) {
			return d, true
		}
	}
	return "", false
}

// occupiedAt reports whether some slot covers the instant: start <= at < end.
func occupiedAt(slots []domain.TimeSlot, at string) bool {
	for _, s := range slots {
		if s.Start <= at && at < s.End {
			return true
		}
	}
	return false
}

// statusAt computes one room's status snapshot for a single day and instant.
// AvailableUntil is the earliest slot start after the instant; empty when
// the room is occupied or stays free for the rest of the day.
func statusAt(r domain.RoomUsage, day, at string) domain.RoomStatus {
	slots := r.Usage[day]
	status := domain.RoomStatus{
		Room:   r.Room,
		Status: domain.StatusOpen,
	}
	if occupiedAt(slots, at) {
		status.Status = domain.StatusOccupied
		status.OccupiedRanges = slots
		return status
	}
	for _, s := range slots {
		if s.Start > at && (status.AvailableUntil == "" || s.Start < status.AvailableUntil) {
			status.AvailableUntil = s.Start
		}
	}
	if len(slots) > 0 {
		status.OccupiedRanges = slots
	}
	return status
}
