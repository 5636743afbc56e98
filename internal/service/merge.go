package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"studyspaces/internal/domain"
	"studyspaces/internal/normalize"
	"studyspaces/internal/repo"
)

// MasterRepo is the slice of the Postgres repository the merge needs.
type MasterRepo interface {
	ReplaceAll(ctx context.Context, semester string, records []domain.RoomUsage) error
}

// MergeService folds department partition files into the master collection.
// A prior master file is folded first so repeated merges over overlapping
// partitions converge instead of losing earlier departments.
type MergeService struct {
	store  repo.PartitionStore
	master MasterRepo // nil when no database is configured
	log    *slog.Logger
}

// NewMergeService constructs a MergeService. master may be nil, in which
// case the merged collection is written to the master file only.
func NewMergeService(store repo.PartitionStore, master MasterRepo, log *slog.Logger) *MergeService {
	return &MergeService{store: store, master: master, log: log}
}

// Merge folds the prior master (when present and readable) and each named
// department's partition into one canonical collection, writes it as the new
// master file, and, when a database is wired, replaces the semester's rows.
//
// A missing partition file is skipped with a warning. A missing master file
// is the normal first-run case and is silent; an unreadable one is warned
// about and treated as absent.
func (s *MergeService) Merge(ctx context.Context, departments []string, term domain.Term) ([]domain.RoomUsage, error) {
	merger := normalize.NewMerger()

	prior, err := s.store.LoadMaster(term)
	switch {
	case err == nil:
		merger.Fold(prior)
	case errors.Is(err, fs.ErrNotExist):
		// First merge for this term.
	default:
		s.log.Warn("prior master unreadable, merging from partitions only", "error", err)
	}

	for _, dept := range departments {
		records, err := s.store.LoadPartition(dept, term)
		if err != nil {
			s.log.Warn("partition unavailable, skipping", "department", dept, "error", err)
			continue
		}
		merger.Fold(records)
	}

	merged := merger.Finalize()
	if err := s.store.SaveMaster(term, merged); err != nil {
		return nil, fmt.Errorf("service.MergeService.Merge: %w", err)
	}

	if s.master != nil {
		if err := s.master.ReplaceAll(ctx, term.Semester(), merged); err != nil {
			return nil, fmt.Errorf("service.MergeService.Merge: %w", err)
		}
	}

	s.log.Info("merge complete", "semester", term.Semester(), "rooms", len(merged))
	return merged, nil
}
