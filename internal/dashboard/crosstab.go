package dashboard

import (
	"github.com/couchcryptid/volcano-dashboard/internal/catalog"
)

// BuildRegionPeriodTable shapes the region/period cross-tabulation for the
// historical-eruptions table view.
func BuildRegionPeriodTable(tbl *catalog.Table) RegionPeriodView {
	crosstab := tbl.RegionPeriodCounts()

	rows := make([]RegionPeriodRow, len(crosstab.Regions))
	for i, region := range crosstab.Regions {
		rows[i] = RegionPeriodRow{Region: region, Counts: crosstab.Counts[i]}
	}

	return RegionPeriodView{
		Title:   "Eruptions by Region and Historical Period",
		Periods: crosstab.Periods,
		Rows:    rows,
	}
}
