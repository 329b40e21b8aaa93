package jobs

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvallenSolutions/lca-engine/internal/lca"
)

func TestPool_ProcessesJobToCompletion(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	defer store.Close()

	aggregator := lca.NewAggregator(lca.NewSimulatedInventory(), zerolog.Nop())
	pool := NewPool(store, aggregator, zerolog.Nop(), 2)
	pool.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		_ = pool.Run(ctx)
		close(done)
	}()

	job, err := store.Create(ctx, "Cider 330ml", []lca.Line{
		{Material: "Apples", Amount: 2, Unit: "kg"},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, getErr := store.Get(context.Background(), job.ID)
		return getErr == nil && got.Status == StatusCompleted
	}, 5*time.Second, 20*time.Millisecond, "job should complete")

	got, err := store.Get(context.Background(), job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Result)
	assert.Greater(t, got.Result.TotalCO2eKg, 0.0)
	assert.True(t, got.Result.ISOCompliant)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pool did not stop after cancellation")
	}
}

func TestPool_StopsOnCancel(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	defer store.Close()

	aggregator := lca.NewAggregator(lca.NewSimulatedInventory(), zerolog.Nop())
	pool := NewPool(store, aggregator, zerolog.Nop(), 1)
	pool.interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- pool.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("pool did not stop after cancellation")
	}
}

func TestNewPool_ClampsWorkerCount(t *testing.T) {
	pool := NewPool(nil, nil, zerolog.Nop(), 0)
	assert.Equal(t, 1, pool.workers)
}
