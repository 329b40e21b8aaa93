package jobs

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AvallenSolutions/lca-engine/internal/lca"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testLines() []lca.Line {
	return []lca.Line{
		{Material: "Apples", Amount: 2, Unit: "kg", Kind: "ingredient"},
		{Material: "Glass bottle", Amount: 0.5, Unit: "kg", Kind: "packaging"},
	}
}

func TestStore_CreateAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	job, err := store.Create(ctx, "Cider 330ml", testLines())
	require.NoError(t, err)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, StatusPending, job.Status)

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)
	assert.Equal(t, "Cider 330ml", got.ProductName)
	assert.Equal(t, StatusPending, got.Status)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "Apples", got.Lines[0].Material)
	assert.Nil(t, got.Result)
}

func TestStore_GetUnknownID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ClaimNext(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, ok, err := store.ClaimNext(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "empty queue yields no job")

	first, err := store.Create(ctx, "first", testLines())
	require.NoError(t, err)
	_, err = store.Create(ctx, "second", testLines())
	require.NoError(t, err)

	claimed, ok, err := store.ClaimNext(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, first.ID, claimed.ID, "oldest pending job is claimed first")
	assert.Equal(t, StatusProcessing, claimed.Status)

	got, err := store.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusProcessing, got.Status)
}

func TestStore_CompleteLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	job, err := store.Create(ctx, "Gin 700ml", testLines())
	require.NoError(t, err)

	result := &lca.ProductResult{
		ProductName: "Gin 700ml",
		TotalCO2eKg: 1.23,
		Lines: []lca.Result{
			{MaterialName: "Apples", AmountKg: 2, TotalCO2eKg: 1.23, DataQuality: lca.QualityISOCompliant},
		},
		ISOCompliant: true,
	}
	require.NoError(t, store.Complete(ctx, job.ID, result))

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.Status)
	require.NotNil(t, got.Result)
	assert.InDelta(t, 1.23, got.Result.TotalCO2eKg, 1e-9)
	assert.True(t, got.Result.ISOCompliant)
}

func TestStore_Fail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	job, err := store.Create(ctx, "broken", testLines())
	require.NoError(t, err)

	require.NoError(t, store.Fail(ctx, job.ID, "inventory database unreachable"))

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got.Status)
	assert.Equal(t, "inventory database unreachable", got.Error)
	assert.Nil(t, got.Result)
}

func TestStore_SetStatusUnknownID(t *testing.T) {
	store := newTestStore(t)
	err := store.Fail(context.Background(), "missing", "boom")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_List(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := store.Create(ctx, name, testLines())
		require.NoError(t, err)
	}

	jobsList, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, jobsList, 2)
}
