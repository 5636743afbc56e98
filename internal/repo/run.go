package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"studyspaces/internal/domain"
)

// RunRepo records scrape-run audit rows. The pipeline treats it as optional:
// a nil RunRepo means no database is configured and runs go unrecorded.
type RunRepo interface {
	// Record inserts one completed run.
	Record(ctx context.Context, run domain.ScrapeRun) error

	// ListByDepartment returns a department's runs, most recent first.
	ListByDepartment(ctx context.Context, department string) ([]domain.ScrapeRun, error)
}

type pgRunRepo struct {
	db db
}

// NewRunRepo constructs a RunRepo backed by the provided db connection.
func NewRunRepo(db db) RunRepo {
	return &pgRunRepo{db: db}
}

// Record inserts one completed scrape run.
func (r *pgRunRepo) Record(ctx context.Context, run domain.ScrapeRun) error {
	const q = `
		INSERT INTO scrape_runs (id, department, semester, courses, accepted, rejected, dropped, started_at, finished_at)
		VALUES (@id, @department, @semester, @courses, @accepted, @rejected, @dropped, @started_at, @finished_at)`

	args := pgx.NamedArgs{
		"id":          run.ID,
		"department":  run.Department,
		"semester":    run.Semester,
		"courses":     run.Courses,
		"accepted":    run.Accepted,
		"rejected":    run.Rejected,
		"dropped":     run.Dropped,
		"started_at":  run.StartedAt,
		"finished_at": run.FinishedAt,
	}

	if _, err := r.db.Exec(ctx, q, args); err != nil {
		return fmt.Errorf("repo.RunRepo.Record: %w", err)
	}
	return nil
}

// ListByDepartment returns a department's runs ordered by started_at descending.
func (r *pgRunRepo) ListByDepartment(ctx context.Context, department string) ([]domain.ScrapeRun, error) {
	const q = `
		SELECT id, department, semester, courses, accepted, rejected, dropped, started_at, finished_at
		FROM scrape_runs
		WHERE department = @department
		ORDER BY started_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"department": department})
	if err != nil {
		return nil, fmt.Errorf("repo.RunRepo.ListByDepartment: %w", err)
	}
	defer rows.Close()

	var runs []domain.ScrapeRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RunRepo.ListByDepartment: scan: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RunRepo.ListByDepartment: rows: %w", err)
	}
	return runs, nil
}

func scanRun(s scanner) (domain.ScrapeRun, error) {
	var (
		run domain.ScrapeRun
		id  pgtype.UUID
	)

	err := s.Scan(&id, &run.Department, &run.Semester, &run.Courses, &run.Accepted,
		&run.Rejected, &run.Dropped, &run.StartedAt, &run.FinishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ScrapeRun{}, domain.ErrNotFound
		}
		return domain.ScrapeRun{}, err
	}

	run.ID = uuid.UUID(id.Bytes)
	return run, nil
}
