package dashboard

import (
	"fmt"

	"github.com/couchcryptid/volcano-dashboard/internal/catalog"
)

// DefaultHistogramBins is the standard bin count for the eruption histogram.
const DefaultHistogramBins = 25

// BuildHistogram bins eruption years within [start, end] into an equal-width
// histogram. A bins value below 1 falls back to DefaultHistogramBins. An
// empty match yields a view with no bins and Total 0, which the UI renders
// as "no eruptions in this range".
func BuildHistogram(tbl *catalog.Table, start, end, bins int) HistogramView {
	if bins < 1 {
		bins = DefaultHistogramBins
	}

	view := HistogramView{
		Title:     fmt.Sprintf("Eruption Frequency: %d-%d", start, end),
		XLabel:    "Year",
		YLabel:    "Number of Volcanoes",
		StartYear: start,
		EndYear:   end,
	}
	if minYear, maxYear, ok := tbl.EruptionYearBounds(); ok {
		view.DatasetMinYear = &minYear
		view.DatasetMaxYear = &maxYear
		view.DatasetCaption = fmt.Sprintf("Full eruption year range in the dataset: %d to %d", minYear, maxYear)
	}

	matched := tbl.EruptionsInYearRange(start, end)
	view.Total = matched.Len()
	if matched.IsEmpty() {
		return view
	}

	years := make([]float64, 0, matched.Len())
	for _, rec := range matched.Records() {
		years = append(years, float64(*rec.EruptionYear))
	}
	view.BinEdges, view.Counts = histogram(years, bins)
	return view
}

// histogram computes equal-width bin edges and per-bin counts over values,
// which must be non-empty. Bins are half-open [edges[i], edges[i+1]) except
// the last, which includes its upper edge so the maximum lands in it. A
// degenerate range (all values equal) is widened by half a unit each side.
func histogram(values []float64, bins int) (edges []float64, counts []int) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(bins)
	edges = make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + width*float64(i)
	}
	edges[bins] = hi // avoid float drift on the final edge

	counts = make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return edges, counts
}
