package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartolsthoorn/gocopt/internal/history"
	"github.com/bartolsthoorn/gocopt/internal/history/memory"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	repo, err := memory.NewRepository(memory.RepositoryConfig{})
	require.NoError(t, err)

	t0 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		run := history.Run{
			ID:        history.NewRunID(t0.Add(time.Duration(i) * time.Second)),
			Source:    "model.lp",
			Status:    "Optimal",
			CreatedAt: t0.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.CreateRun(ctx, run))
		ids = append(ids, run.ID)
	}

	got, err := repo.GetRun(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, "model.lp", got.Source)

	runs, err := repo.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, ids[2], runs[0].ID)
	assert.Equal(t, ids[1], runs[1].ID)

	err = repo.CreateRun(ctx, *got)
	assert.ErrorIs(t, err, history.ErrAlreadyExists)
	_, err = repo.GetRun(ctx, "missing")
	assert.ErrorIs(t, err, history.ErrNotFound)
	err = repo.CreateRun(ctx, history.Run{})
	assert.ErrorIs(t, err, history.ErrNotValid)
}
