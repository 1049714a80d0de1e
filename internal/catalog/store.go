package catalog

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/volcano-dashboard/internal/observability"
)

// Store memoizes the loaded catalog for the process lifetime. The first
// Table call performs the load; every later call returns the same cached
// table, including after a failed load (the empty table is cached too, so a
// broken source is not hammered on every request). Invalidate or Reload
// discard the cache.
//
// All methods are safe for concurrent use. The cached *Table itself is
// immutable and shared by reference.
type Store struct {
	path    string
	logger  *slog.Logger
	metrics *observability.Metrics

	mu       sync.Mutex
	table    *Table
	stats    LoadStats
	loadErr  error
	loadedAt time.Time
}

// NewStore returns a store that loads the catalog from path on demand.
func NewStore(path string, logger *slog.Logger, metrics *observability.Metrics) *Store {
	return &Store{
		path:    path,
		logger:  logger,
		metrics: metrics,
	}
}

// Table returns the memoized catalog table, loading it on first use. After a
// failed load the cached table is empty and the load error is returned with
// it on every call until the cache is discarded; callers decide how to
// degrade (the HTTP layer serves 503s, the overview reports emptiness).
func (s *Store) Table() (*Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table != nil {
		return s.table, s.loadErr
	}
	return s.loadLocked()
}

// Reload discards the cached table and loads the source immediately.
func (s *Store) Reload() (*Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = nil
	s.loadErr = nil
	return s.loadLocked()
}

// Invalidate discards the cached table; the next Table call reloads.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = nil
	s.loadErr = nil
}

// loadLocked performs the load and caches the outcome. Callers hold s.mu.
func (s *Store) loadLocked() (*Table, error) {
	start := time.Now()
	tbl, stats, err := Load(s.path)

	s.table = &tbl
	s.stats = stats
	s.loadErr = err
	s.loadedAt = clock.Now()

	s.observe(stats, time.Since(start), err)
	if err != nil {
		s.logger.Error("catalog load failed", "path", s.path, "error", err)
		return s.table, err
	}
	s.logger.Info("catalog loaded",
		"path", s.path,
		"records", tbl.Len(),
		"rows_read", stats.RowsRead,
		"dropped_coordinates", stats.DroppedCoordinates,
		"skipped_malformed", stats.SkippedMalformed,
		"elevation_absent", stats.ElevationAbsent,
		"eruption_year_absent", stats.EruptionYearAbsent,
	)
	return s.table, nil
}

func (s *Store) observe(stats LoadStats, elapsed time.Duration, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.metrics.CatalogLoads.WithLabelValues(outcome).Inc()
	s.metrics.CatalogLoadDuration.Observe(elapsed.Seconds())
	s.metrics.CatalogRecords.Set(float64(stats.Loaded))
	s.metrics.CatalogRowsExcluded.WithLabelValues("coordinates").Set(float64(stats.DroppedCoordinates))
	s.metrics.CatalogRowsExcluded.WithLabelValues("malformed").Set(float64(stats.SkippedMalformed))
	s.metrics.CatalogFieldAbsent.WithLabelValues("elevation_m").Set(float64(stats.ElevationAbsent))
	s.metrics.CatalogFieldAbsent.WithLabelValues("eruption_year").Set(float64(stats.EruptionYearAbsent))
}

// Stats returns the load statistics from the most recent load, or the zero
// value when nothing has loaded yet.
func (s *Store) Stats() LoadStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// LoadedAt returns when the cached table was loaded, or the zero time when
// nothing has loaded yet.
func (s *Store) LoadedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadedAt
}

// CheckReadiness reports whether the store holds a non-empty table. Used by
// the HTTP readiness probe: a dashboard with no catalog is alive but not
// ready.
func (s *Store) CheckReadiness(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.table == nil {
		return errors.New("catalog not loaded yet")
	}
	if s.table.IsEmpty() {
		if s.loadErr != nil {
			return s.loadErr
		}
		return errors.New("catalog is empty")
	}
	return nil
}
