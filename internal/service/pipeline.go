// Package service contains the business logic: the scrape pipeline, the
// partition merge, and the availability queries served by the API.
// No SQL and no HTML parsing live here — services depend on repo and scrape
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"studyspaces/internal/domain"
	"studyspaces/internal/normalize"
	"studyspaces/internal/repo"
	"studyspaces/internal/scrape"
)

// CatalogClient is the slice of the catalog scraper the pipeline needs.
type CatalogClient interface {
	Courses(ctx context.Context, dept string, term domain.Term) ([]scrape.Course, error)
	Meetings(ctx context.Context, courseURL string) ([]domain.RawMeeting, error)
}

// PipelineService turns one department's catalog pages into a partition
// file plus a rejection audit file. Failures on individual courses or
// meetings never fail the run; they are logged, counted, and skipped.
type PipelineService struct {
	catalog CatalogClient
	store   repo.PartitionStore
	runs    repo.RunRepo // nil when no database is configured
	log     *slog.Logger
}

// NewPipelineService constructs a PipelineService. runs may be nil, in which
// case run summaries are logged but not persisted.
func NewPipelineService(catalog CatalogClient, store repo.PartitionStore, runs repo.RunRepo, log *slog.Logger) *PipelineService {
	return &PipelineService{catalog: catalog, store: store, runs: runs, log: log}
}

// RunDepartment scrapes, filters, and aggregates one department for one
// term, then writes its partition and rejection files. The returned run
// summary carries the accepted/rejected/dropped counts.
func (s *PipelineService) RunDepartment(ctx context.Context, dept string, term domain.Term) (domain.ScrapeRun, error) {
	run := domain.ScrapeRun{
		ID:         uuid.New(),
		Department: dept,
		Semester:   term.Semester(),
		StartedAt:  time.Now().UTC(),
	}

	courses, err := s.catalog.Courses(ctx, dept, term)
	if err != nil {
		return domain.ScrapeRun{}, fmt.Errorf("service.PipelineService.RunDepartment: %w", err)
	}
	run.Courses = len(courses)

	agg := normalize.NewAggregator(term)
	var rejections []domain.Rejection

	for _, course := range courses {
		meetings, err := s.catalog.Meetings(ctx, course.URL)
		if err != nil {
			s.log.Warn("course fetch failed, skipping",
				"department", dept, "course", course.Name, "error", err)
			continue
		}
		for _, m := range meetings {
			reason, ok := normalize.FilterMeeting(m)
			if !ok {
				run.Rejected++
				rejections = append(rejections, domain.Rejection{
					ID:     uuid.New(),
					Course: course.Name,
					Reason: reason,
				})
				continue
			}
			if !agg.Add(course.Name, m) {
				run.Dropped++
				continue
			}
			run.Accepted++
		}
	}

	records := agg.Finalize()
	if err := s.store.SavePartition(dept, term, records); err != nil {
		return domain.ScrapeRun{}, fmt.Errorf("service.PipelineService.RunDepartment: %w", err)
	}
	if err := s.store.SaveRejections(dept, term, rejections); err != nil {
		return domain.ScrapeRun{}, fmt.Errorf("service.PipelineService.RunDepartment: %w", err)
	}

	run.FinishedAt = time.Now().UTC()
	if s.runs != nil {
		if err := s.runs.Record(ctx, run); err != nil {
			s.log.Warn("run audit record failed", "department", dept, "error", err)
		}
	}

	s.log.Info("department run complete",
		"department", dept,
		"semester", run.Semester,
		"courses", run.Courses,
		"accepted", run.Accepted,
		"rejected", run.Rejected,
		"dropped", run.Dropped,
		"rooms", len(records))
	return run, nil
}
