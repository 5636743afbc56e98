package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyspaces/internal/domain"
	"studyspaces/internal/repo"
	"studyspaces/testutil"
)

func newTestRunRepo(t *testing.T) repo.RunRepo {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})

	return repo.NewRunRepo(tx)
}

func TestRunRepo_RecordAndList(t *testing.T) {
	r := newTestRunRepo(t)
	ctx := context.Background()

	started := time.Date(2025, 9, 1, 6, 0, 0, 0, time.UTC)
	run := domain.ScrapeRun{
		ID:         uuid.New(),
		Department: "ACCY",
		Semester:   "Fall 2025",
		Courses:    42,
		Accepted:   120,
		Rejected:   7,
		Dropped:    3,
		StartedAt:  started,
		FinishedAt: started.Add(90 * time.Second),
	}

	require.NoError(t, r.Record(ctx, run))

	runs, err := r.ListByDepartment(ctx, "ACCY")

	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
	assert.Equal(t, run.Courses, runs[0].Courses)
	assert.Equal(t, run.Rejected, runs[0].Rejected)
	assert.True(t, runs[0].StartedAt.Equal(run.StartedAt), "StartedAt mismatch")
}

func TestRunRepo_ListByDepartment_OrdersMostRecentFirst(t *testing.T) {
	r := newTestRunRepo(t)
	ctx := context.Background()

	base := time.Date(2025, 9, 1, 6, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, r.Record(ctx, domain.ScrapeRun{
			ID:         uuid.New(),
			Department: "CS",
			Semester:   "Fall 2025",
			StartedAt:  base.Add(time.Duration(i) * time.Hour),
			FinishedAt: base.Add(time.Duration(i)*time.Hour + time.Minute),
		}))
	}

	runs, err := r.ListByDepartment(ctx, "CS")

	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
	assert.True(t, runs[1].StartedAt.After(runs[2].StartedAt))
}
