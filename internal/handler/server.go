// Package handler implements the HTTP handlers for the room availability API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, rooms.go, export.go) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"

	"studyspaces/internal/domain"
)

// AvailabilityServicer defines the business operations the room handlers
// depend on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type AvailabilityServicer interface {
	AvailableRooms(ctx context.Context, building, day, at string) ([]domain.RoomUsage, error)
	RoomsWithStatus(ctx context.Context, building, day, at string) ([]domain.RoomStatus, error)
	Buildings(ctx context.Context) ([]string, error)
	RoomByName(ctx context.Context, building, room string) (domain.RoomUsage, error)
}

// ExportServicer defines the export operations the export handlers depend on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
	RoomCalendar(ctx context.Context, building, room string, weekAnchor time.Time) (string, error)
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	availability AvailabilityServicer
	export       ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(availability AvailabilityServicer, export ExportServicer) *Server {
	return &Server{availability: availability, export: export}
}

// Routes returns the chi router with every endpoint mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/buildings", s.ListBuildings)
		r.Get("/buildings/{building}/rooms", s.ListBuildingRooms)
		r.Get("/rooms", s.ListAvailableRooms)
		r.Get("/rooms/{building}/{room}", s.GetRoom)
		r.Get("/rooms/{building}/{room}/calendar.ics", s.GetRoomCalendar)
		r.Get("/export", s.GetExport)
	})

	return r
}
