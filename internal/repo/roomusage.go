// Package repo contains all database and partition-file access logic.
// Each resource has its own file with an interface and an implementation.
// No normalization logic lives here — only SQL, JSON files, and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"studyspaces/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
// Begin on a pgx.Tx opens a savepoint, so ReplaceAll stays testable.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RoomUsageRepo defines the persistence operations for merged room-usage
// records. The service layer depends on this interface, not the concrete
// Postgres implementation, which allows the services to be unit-tested with
// a mock.
type RoomUsageRepo interface {
	// ReplaceAll atomically swaps the stored records for one semester with
	// the given collection. Readers never observe a partially merged state.
	ReplaceAll(ctx context.Context, semester string, records []domain.RoomUsage) error

	// ListByBuilding returns all rooms of one building ordered by room.
	ListByBuilding(ctx context.Context, building string) ([]domain.RoomUsage, error)

	// GetByRoom retrieves a single room record.
	// Returns domain.ErrNotFound if the room is unknown.
	GetByRoom(ctx context.Context, building, room string) (domain.RoomUsage, error)

	// Buildings returns the distinct building names, sorted.
	Buildings(ctx context.Context) ([]string, error)

	// All returns every record ordered by building then room.
	All(ctx context.Context) ([]domain.RoomUsage, error)
}

// pgRoomUsageRepo is the Postgres implementation of RoomUsageRepo.
// Usage maps and course lists are stored as jsonb.
type pgRoomUsageRepo struct {
	db db
}

// NewRoomUsageRepo constructs a RoomUsageRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewRoomUsageRepo(db db) RoomUsageRepo {
	return &pgRoomUsageRepo{db: db}
}

// ReplaceAll deletes the semester's rows and inserts the new collection in
// one transaction.
func (r *pgRoomUsageRepo) ReplaceAll(ctx context.Context, semester string, records []domain.RoomUsage) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repo.RoomUsageRepo.ReplaceAll: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const del = `DELETE FROM room_usage WHERE semester = @semester`
	if _, err := tx.Exec(ctx, del, pgx.NamedArgs{"semester": semester}); err != nil {
		return fmt.Errorf("repo.RoomUsageRepo.ReplaceAll: delete: %w", err)
	}

	const ins = `
		INSERT INTO room_usage (building, room, room_id, semester, usage, courses)
		VALUES (@building, @room, @room_id, @semester, @usage, @courses)`

	for _, rec := range records {
		usage, err := json.Marshal(rec.Usage)
		if err != nil {
			return fmt.Errorf("repo.RoomUsageRepo.ReplaceAll: marshal usage: %w", err)
		}
		courses, err := json.Marshal(rec.Courses)
		if err != nil {
			return fmt.Errorf("repo.RoomUsageRepo.ReplaceAll: marshal courses: %w", err)
		}
		args := pgx.NamedArgs{
			"building": rec.Building,
			"room":     rec.Room,
			"room_id":  rec.RoomID,
			"semester": rec.Semester,
			"usage":    usage,
			"courses":  courses,
		}
		if _, err := tx.Exec(ctx, ins, args); err != nil {
			return fmt.Errorf("repo.RoomUsageRepo.ReplaceAll: insert %s %s: %w", rec.Building, rec.Room, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repo.RoomUsageRepo.ReplaceAll: commit: %w", err)
	}
	return nil
}

// ListByBuilding returns all rooms of one building ordered by room.
func (r *pgRoomUsageRepo) ListByBuilding(ctx context.Context, building string) ([]domain.RoomUsage, error) {
	const q = `
		SELECT building, room, room_id, semester, usage, courses
		FROM room_usage
		WHERE building = @building
		ORDER BY room`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"building": building})
	if err != nil {
		return nil, fmt.Errorf("repo.RoomUsageRepo.ListByBuilding: %w", err)
	}
	defer rows.Close()

	return collectRoomUsage(rows, "repo.RoomUsageRepo.ListByBuilding")
}

// GetByRoom retrieves one room record by its natural key.
func (r *pgRoomUsageRepo) GetByRoom(ctx context.Context, building, room string) (domain.RoomUsage, error) {
	const q = `
		SELECT building, room, room_id, semester, usage, courses
		FROM room_usage
		WHERE building = @building AND room = @room`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"building": building, "room": room})
	rec, err := scanRoomUsage(row)
	if err != nil {
		return domain.RoomUsage{}, fmt.Errorf("repo.RoomUsageRepo.GetByRoom: %w", err)
	}
	return rec, nil
}

// Buildings returns the distinct building names in sorted order.
func (r *pgRoomUsageRepo) Buildings(ctx context.Context) ([]string, error) {
	const q = `SELECT DISTINCT building FROM room_usage ORDER BY building`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RoomUsageRepo.Buildings: %w", err)
	}
	defer rows.Close()

	var buildings []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("repo.RoomUsageRepo.Buildings: scan: %w", err)
		}
		buildings = append(buildings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RoomUsageRepo.Buildings: rows: %w", err)
	}
	return buildings, nil
}

// All returns every record ordered by building then room.
func (r *pgRoomUsageRepo) All(ctx context.Context) ([]domain.RoomUsage, error) {
	const q = `
		SELECT building, room, room_id, semester, usage, courses
		FROM room_usage
		ORDER BY building, room`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.RoomUsageRepo.All: %w", err)
	}
	defer rows.Close()

	return collectRoomUsage(rows, "repo.RoomUsageRepo.All")
}

func collectRoomUsage(rows pgx.Rows, op string) ([]domain.RoomUsage, error) {
	var records []domain.RoomUsage
	for rows.Next() {
		rec, err := scanRoomUsage(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, err)
	}
	return records, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanRoomUsage
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanRoomUsage maps a single database row into a domain.RoomUsage,
// decoding the jsonb usage and courses columns.
func scanRoomUsage(s scanner) (domain.RoomUsage, error) {
	var (
		rec     domain.RoomUsage
		usage   []byte
		courses []byte
	)

	err := s.Scan(&rec.Building, &rec.Room, &rec.RoomID, &rec.Semester, &usage, &courses)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RoomUsage{}, domain.ErrNotFound
		}
		return domain.RoomUsage{}, err
	}

	if err := json.Unmarshal(usage, &rec.Usage); err != nil {
		return domain.RoomUsage{}, fmt.Errorf("decode usage: %w", err)
	}
	if err := json.Unmarshal(courses, &rec.Courses); err != nil {
		return domain.RoomUsage{}, fmt.Errorf("decode courses: %w", err)
	}
	return rec, nil
}
