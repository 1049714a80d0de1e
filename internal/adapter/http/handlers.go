package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/couchcryptid/volcano-dashboard/internal/catalog"
	"github.com/couchcryptid/volcano-dashboard/internal/dashboard"
	"github.com/couchcryptid/volcano-dashboard/internal/observability"
)

// api holds the dependencies shared by the dashboard view handlers.
type api struct {
	store       *catalog.Store
	logger      *slog.Logger
	metrics     *observability.Metrics
	defaultBins int
}

// table fetches the cached catalog, replying 503 when it is empty. Data
// endpoints are gated on a non-empty catalog; only the overview reports an
// empty one. Returns ok=false after the 503 has been written.
func (a *api) table(w http.ResponseWriter) (*catalog.Table, bool) {
	tbl, err := a.store.Table()
	if tbl.IsEmpty() {
		msg := "volcano catalog unavailable"
		if err != nil {
			msg = err.Error()
		}
		writeError(w, http.StatusServiceUnavailable, msg)
		return nil, false
	}
	return tbl, true
}

func (a *api) handleOverview(w http.ResponseWriter, _ *http.Request) {
	a.metrics.ViewRequests.WithLabelValues("overview").Inc()

	// No emptiness gate: the overview is how clients learn the catalog is
	// empty in the first place.
	tbl, _ := a.store.Table()
	writeJSON(w, http.StatusOK, dashboard.BuildOverview(tbl))
}

func (a *api) handleCountries(w http.ResponseWriter, _ *http.Request) {
	a.metrics.ViewRequests.WithLabelValues("countries").Inc()

	tbl, ok := a.table(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"countries": tbl.Countries()})
}

func (a *api) handleHistogram(w http.ResponseWriter, r *http.Request) {
	a.metrics.ViewRequests.WithLabelValues("histogram").Inc()

	start, err := queryInt(r, "start", catalog.DefaultEruptionRangeStart)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start: must be an integer year")
		return
	}
	end, err := queryInt(r, "end", catalog.DefaultEruptionRangeEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end: must be an integer year")
		return
	}
	bins, err := queryInt(r, "bins", a.defaultBins)
	if err != nil || bins < 1 || bins > 500 {
		writeError(w, http.StatusBadRequest, "invalid bins: must be an integer in [1, 500]")
		return
	}

	tbl, ok := a.table(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dashboard.BuildHistogram(tbl, start, end, bins))
}

func (a *api) handleActivity(w http.ResponseWriter, r *http.Request) {
	a.metrics.ViewRequests.WithLabelValues("activity").Inc()

	country := r.URL.Query().Get("country")
	if country == "" {
		writeError(w, http.StatusBadRequest, "missing required parameter: country")
		return
	}

	tbl, ok := a.table(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dashboard.BuildActivityBar(tbl, country))
}

func (a *api) handleRecentMap(w http.ResponseWriter, _ *http.Request) {
	a.metrics.ViewRequests.WithLabelValues("map").Inc()

	tbl, ok := a.table(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dashboard.BuildRecentEruptionsMap(tbl))
}

func (a *api) handleRegionPeriods(w http.ResponseWriter, _ *http.Request) {
	a.metrics.ViewRequests.WithLabelValues("crosstab").Inc()

	tbl, ok := a.table(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dashboard.BuildRegionPeriodTable(tbl))
}

// handleReload discards the cached catalog and loads the source again. This
// is the only way to pick up a replaced CSV without restarting the process.
func (a *api) handleReload(w http.ResponseWriter, _ *http.Request) {
	tbl, err := a.store.Reload()
	if err != nil {
		a.logger.Warn("catalog reload failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "reload failed",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "reloaded",
		"records": tbl.Len(),
	})
}

// queryInt parses an optional integer query parameter, returning fallback
// when the parameter is absent.
func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
