package catalog

import "sort"

// Default year window for the recent-eruptions query.
const (
	DefaultEruptionRangeStart = 2000
	DefaultEruptionRangeEnd   = 2025
)

// EruptionsInYearRange returns the sub-table of records whose eruption year
// is present and satisfies start <= year <= end. Records with an absent year
// never match. An empty result is valid; start > end simply matches nothing.
func (t Table) EruptionsInYearRange(start, end int) Table {
	var matched []VolcanoRecord
	for _, rec := range t.records {
		if rec.EruptionYear == nil {
			continue
		}
		if y := *rec.EruptionYear; y >= start && y <= end {
			matched = append(matched, rec)
		}
	}
	return Table{records: matched}
}

// RecentEruptions is EruptionsInYearRange with the default window applied.
func (t Table) RecentEruptions() Table {
	return t.EruptionsInYearRange(DefaultEruptionRangeStart, DefaultEruptionRangeEnd)
}

// EruptionYearBounds returns the minimum and maximum eruption year across
// records with a present year. ok is false when the table is empty or no
// record has a year; min and max are meaningless in that case.
func (t Table) EruptionYearBounds() (min, max int, ok bool) {
	for _, rec := range t.records {
		if rec.EruptionYear == nil {
			continue
		}
		y := *rec.EruptionYear
		if !ok {
			min, max, ok = y, y, true
			continue
		}
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	return min, max, ok
}

// ActivityCounts tallies records per Activity_Evidence value for one country.
// Country matching is exact equality against the trimmed value stored at load
// time. Records with a blank Activity_Evidence are not counted, mirroring how
// the upstream export leaves unknown evidence empty rather than labeled.
func (t Table) ActivityCounts(country string) map[string]int {
	counts := make(map[string]int)
	for _, rec := range t.records {
		if rec.Country != country || rec.ActivityEvidence == "" {
			continue
		}
		counts[rec.ActivityEvidence]++
	}
	return counts
}

// Countries returns the distinct non-blank country names in the table,
// sorted ascending. This is the selection domain for ActivityCounts.
func (t Table) Countries() []string {
	seen := make(map[string]struct{})
	var countries []string
	for _, rec := range t.records {
		c := rec.Country
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		countries = append(countries, c)
	}
	sort.Strings(countries)
	return countries
}
