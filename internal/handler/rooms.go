package handler

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// ListBuildings handles GET /api/buildings.
func (s *Server) ListBuildings(w http.ResponseWriter, r *http.Request) {
	buildings, err := s.availability.Buildings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, buildings)
}

// ListAvailableRooms handles GET /api/rooms?building=&day=&time=.
// It returns the rooms of the building that are free at the given instant.
func (s *Server) ListAvailableRooms(w http.ResponseWriter, r *http.Request) {
	building := r.URL.Query().Get("building")
	if building == "" {
		requestError(w, "building query parameter is required")
		return
	}
	rooms, err := s.availability.AvailableRooms(r.Context(), building,
		r.URL.Query().Get("day"), r.URL.Query().Get("time"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

// ListBuildingRooms handles GET /api/buildings/{building}/rooms?day=&time=.
// It returns every room of the building with its OPEN/OCCUPIED status.
func (s *Server) ListBuildingRooms(w http.ResponseWriter, r *http.Request) {
	building, err := pathParam(r, "building")
	if err != nil {
		requestError(w, "malformed building path segment")
		return
	}
	statuses, err := s.availability.RoomsWithStatus(r.Context(), building,
		r.URL.Query().Get("day"), r.URL.Query().Get("time"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statuses)
}

// GetRoom handles GET /api/rooms/{building}/{room}.
// It returns the room's full weekly usage record.
func (s *Server) GetRoom(w http.ResponseWriter, r *http.Request) {
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
	rec, err := s.availability.RoomByName(r.Context(), building, room)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// pathParam returns a chi URL parameter with percent-encoding decoded, so
// building names with spaces ("Wohlers%20Hall") arrive as written.
func pathParam(r *http.Request, key string) (string, error) {
	return url.PathUnescape(chi.URLParam(r, key))
}
