package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studyspaces/internal/domain"
)

// PartitionStore persists per-department partition files, rejection audit
// files, and the merged master file as JSON on disk.
//
// LoadPartition and LoadMaster preserve fs.ErrNotExist in their error chain
// so callers can distinguish a missing file (expected on first runs) from a
// corrupt one.
type PartitionStore interface {
	SavePartition(dept string, term domain.Term, records []domain.RoomUsage) error
	LoadPartition(dept string, term domain.Term) ([]domain.RoomUsage, error)
	SaveRejections(dept string, term domain.Term, rejections []domain.Rejection) error
	SaveMaster(term domain.Term, records []domain.RoomUsage) error
	LoadMaster(term domain.Term) ([]domain.RoomUsage, error)
}

// fileStore lays files out under a root directory:
//
//	<root>/departments/<dept>/room_usage_<dept>_<year>_<label>.json
//	<root>/departments/<dept>/rejected_<dept>_<year>_<label>.json
//	<root>/room_usage_<label><year>.json
type fileStore struct {
	root string
}

// NewPartitionStore returns a PartitionStore rooted at dir.
func NewPartitionStore(dir string) PartitionStore {
	return &fileStore{root: dir}
}

func (s *fileStore) partitionPath(dept string, term domain.Term) string {
	dept = strings.ToUpper(dept)
	name := fmt.Sprintf("room_usage_%s_%s_%s.json", dept, term.Year, term.Label)
	return filepath.Join(s.root, "departments", dept, name)
}

func (s *fileStore) rejectionsPath(dept string, term domain.Term) string {
	dept = strings.ToUpper(dept)
	name := fmt.Sprintf("rejected_%s_%s_%s.json", dept, term.Year, term.Label)
	return filepath.Join(s.root, "departments", dept, name)
}

func (s *fileStore) masterPath(term domain.Term) string {
	return filepath.Join(s.root, fmt.Sprintf("room_usage_%s%s.json", term.Label, term.Year))
}

// SavePartition writes one department's aggregated records.
func (s *fileStore) SavePartition(dept string, term domain.Term, records []domain.RoomUsage) error {
	if err := writeJSONFile(s.partitionPath(dept, term), records); err != nil {
		return fmt.Errorf("repo.PartitionStore.SavePartition: %w", err)
	}
	return nil
}

// LoadPartition reads one department's partition file.
func (s *fileStore) LoadPartition(dept string, term domain.Term) ([]domain.RoomUsage, error) {
	var records []domain.RoomUsage
	if err := readJSONFile(s.partitionPath(dept, term), &records); err != nil {
		return nil, fmt.Errorf("repo.PartitionStore.LoadPartition: %w", err)
	}
	return records, nil
}

// SaveRejections writes the rejection audit records for one department run.
func (s *fileStore) SaveRejections(dept string, term domain.Term, rejections []domain.Rejection) error {
	if err := writeJSONFile(s.rejectionsPath(dept, term), rejections); err != nil {
		return fmt.Errorf("repo.PartitionStore.SaveRejections: %w", err)
	}
	return nil
}

// SaveMaster writes the merged master collection.
func (s *fileStore) SaveMaster(term domain.Term, records []domain.RoomUsage) error {
	if err := writeJSONFile(s.masterPath(term), records); err != nil {
		return fmt.Errorf("repo.PartitionStore.SaveMaster: %w", err)
	}
	return nil
}

// LoadMaster reads the merged master collection from a prior run.
func (s *fileStore) LoadMaster(term domain.Term) ([]domain.RoomUsage, error) {
	var records []domain.RoomUsage
	if err := readJSONFile(s.masterPath(term), &records); err != nil {
		return nil, fmt.Errorf("repo.PartitionStore.LoadMaster: %w", err)
	}
	return records, nil
}

func writeJSONFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err // preserves fs.ErrNotExist
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
