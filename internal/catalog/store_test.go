package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/volcano-dashboard/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics() *observability.Metrics {
	// Use a fresh registry to avoid "already registered" panics in tests.
	return observability.NewMetricsForTesting()
}

func TestStore_MemoizesTable(t *testing.T) {
	store := NewStore(sampleCSV, testLogger(), newTestMetrics())

	first, err := store.Table()
	require.NoError(t, err)
	assert.Equal(t, 13, first.Len())

	second, err := store.Table()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestStore_CachesFailedLoad(t *testing.T) {
	store := NewStore("testdata/no_such_file.csv", testLogger(), newTestMetrics())

	first, err := store.Table()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	require.NotNil(t, first)
	assert.True(t, first.IsEmpty())

	// The empty table and the error stay cached; the source is not retried.
	second, err := store.Table()
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.Same(t, first, second)
}

func TestStore_Invalidate(t *testing.T) {
	store := NewStore(sampleCSV, testLogger(), newTestMetrics())

	first, err := store.Table()
	require.NoError(t, err)

	store.Invalidate()

	second, err := store.Table()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, first.Len(), second.Len())
}

func TestStore_Reload(t *testing.T) {
	store := NewStore(sampleCSV, testLogger(), newTestMetrics())

	first, err := store.Table()
	require.NoError(t, err)

	second, err := store.Reload()
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, 13, second.Len())
}

func TestStore_LoadedAt(t *testing.T) {
	loadTime := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(loadTime))
	t.Cleanup(func() {
		SetClock(nil)
	})

	store := NewStore(sampleCSV, testLogger(), newTestMetrics())
	assert.True(t, store.LoadedAt().IsZero())

	_, err := store.Table()
	require.NoError(t, err)
	assert.Equal(t, loadTime, store.LoadedAt())
}

func TestStore_Stats(t *testing.T) {
	store := NewStore(sampleCSV, testLogger(), newTestMetrics())
	assert.Equal(t, LoadStats{}, store.Stats())

	_, err := store.Table()
	require.NoError(t, err)
	assert.Equal(t, 16, store.Stats().RowsRead)
	assert.Equal(t, 13, store.Stats().Loaded)
}

func TestStore_NilMetrics(t *testing.T) {
	store := NewStore(sampleCSV, testLogger(), nil)

	tbl, err := store.Table()
	require.NoError(t, err)
	assert.Equal(t, 13, tbl.Len())
}

func TestStore_CheckReadiness(t *testing.T) {
	ctx := context.Background()

	t.Run("not loaded yet", func(t *testing.T) {
		store := NewStore(sampleCSV, testLogger(), newTestMetrics())
		assert.Error(t, store.CheckReadiness(ctx))
	})

	t.Run("ready after load", func(t *testing.T) {
		store := NewStore(sampleCSV, testLogger(), newTestMetrics())
		_, err := store.Table()
		require.NoError(t, err)
		assert.NoError(t, store.CheckReadiness(ctx))
	})

	t.Run("not ready after failed load", func(t *testing.T) {
		store := NewStore("testdata/no_such_file.csv", testLogger(), newTestMetrics())
		_, err := store.Table()
		require.Error(t, err)

		err = store.CheckReadiness(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})
}
