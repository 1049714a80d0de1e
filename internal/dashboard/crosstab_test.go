package dashboard

import (
	"testing"

	"github.com/couchcryptid/volcano-dashboard/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regionYear(region string, year int) catalog.VolcanoRecord {
	return catalog.VolcanoRecord{Region: region, EruptionYear: yearPtr(year)}
}

func TestBuildRegionPeriodTable(t *testing.T) {
	tbl := catalog.NewTable([]catalog.VolcanoRecord{
		regionYear("Japan", 1707),
		regionYear("Japan", 2019),
		regionYear("Indonesia", 1920),
		regionYear("Alaska", 6850), // outside every period
	})

	view := BuildRegionPeriodTable(&tbl)

	assert.Equal(t, "Eruptions by Region and Historical Period", view.Title)
	assert.Equal(t, catalog.PeriodLabels(), view.Periods)

	require.Len(t, view.Rows, 2)
	assert.Equal(t, "Indonesia", view.Rows[0].Region)
	assert.Equal(t, []int{0, 0, 1, 0, 0}, view.Rows[0].Counts)
	assert.Equal(t, "Japan", view.Rows[1].Region)
	assert.Equal(t, []int{1, 0, 0, 0, 1}, view.Rows[1].Counts)
}

func TestBuildRegionPeriodTable_EmptyCatalog(t *testing.T) {
	tbl := catalog.NewTable(nil)
	view := BuildRegionPeriodTable(&tbl)

	assert.Equal(t, catalog.PeriodLabels(), view.Periods)
	assert.Empty(t, view.Rows)
}
