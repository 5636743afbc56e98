package domain

import (
	"time"

	"github.com/google/uuid"
)

// ScrapeRun summarizes one department pipeline run for the audit trail.
// Rejected counts meetings discarded by the content filter (each with a
// Rejection record); Dropped counts meetings lost to an unsplittable
// location or a days code with no recognized weekdays, which intentionally
// carry no per-record reason.
type ScrapeRun struct {
	ID         uuid.UUID
	Department string
	Semester   string
	Courses    int
	Accepted   int
	Rejected   int
	Dropped    int
	StartedAt  time.Time
	FinishedAt time.Time
}
