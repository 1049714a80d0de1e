package catalog

import "sort"

// Historical periods for the region cross-tabulation. Each bucket is
// half-open [Start, End) except the last, which includes its end year so
// 2025 eruptions land in it.
var historicalPeriods = []struct {
	Label string
	Start int
	End   int
}{
	{Label: "[0, 1800)", Start: 0, End: 1800},
	{Label: "[1800, 1900)", Start: 1800, End: 1900},
	{Label: "[1900, 1950)", Start: 1900, End: 1950},
	{Label: "[1950, 2000)", Start: 1950, End: 2000},
	{Label: "[2000, 2025]", Start: 2000, End: 2026},
}

// PeriodLabels returns the period column labels in chronological order.
func PeriodLabels() []string {
	labels := make([]string, len(historicalPeriods))
	for i, p := range historicalPeriods {
		labels[i] = p.Label
	}
	return labels
}

// periodIndex maps an eruption year to its period bucket. ok is false for
// years outside every bucket (negative or beyond 2025); such records are
// excluded from the cross-tabulation.
func periodIndex(year int) (int, bool) {
	for i, p := range historicalPeriods {
		if year >= p.Start && year < p.End {
			return i, true
		}
	}
	return 0, false
}

// RegionPeriodTable is a cross-tabulation of eruption counts by region and
// historical period. Rows are sorted by region name; Counts[i][j] is the
// number of eruptions in Regions[i] during Periods[j], zero-filled.
type RegionPeriodTable struct {
	Periods []string
	Regions []string
	Counts  [][]int
}

// Count returns the cell for (region, period label), or 0 when either label
// is not present in the table.
func (t *RegionPeriodTable) Count(region, period string) int {
	col := -1
	for j, p := range t.Periods {
		if p == period {
			col = j
			break
		}
	}
	if col < 0 {
		return 0
	}
	for i, r := range t.Regions {
		if r == region {
			return t.Counts[i][col]
		}
	}
	return 0
}

// RegionPeriodCounts cross-tabulates eruption counts by region and historical
// period. Only records with a non-blank Region and a present eruption year
// inside one of the buckets contribute; a region whose eruptions all fall
// outside the buckets gets no row.
func (t Table) RegionPeriodCounts() *RegionPeriodTable {
	byRegion := make(map[string][]int)
	for _, rec := range t.records {
		if rec.Region == "" || rec.EruptionYear == nil {
			continue
		}
		idx, ok := periodIndex(*rec.EruptionYear)
		if !ok {
			continue
		}
		row, exists := byRegion[rec.Region]
		if !exists {
			row = make([]int, len(historicalPeriods))
			byRegion[rec.Region] = row
		}
		row[idx]++
	}

	regions := make([]string, 0, len(byRegion))
	for region := range byRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	counts := make([][]int, len(regions))
	for i, region := range regions {
		counts[i] = byRegion[region]
	}
	return &RegionPeriodTable{
		Periods: PeriodLabels(),
		Regions: regions,
		Counts:  counts,
	}
}
