package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regionYear(region string, year int) VolcanoRecord {
	return VolcanoRecord{Region: region, EruptionYear: yearPtr(year)}
}

func TestPeriodLabels(t *testing.T) {
	assert.Equal(t, []string{
		"[0, 1800)",
		"[1800, 1900)",
		"[1900, 1950)",
		"[1950, 2000)",
		"[2000, 2025]",
	}, PeriodLabels())
}

func TestPeriodIndex(t *testing.T) {
	tests := []struct {
		name string
		year int
		idx  int
		ok   bool
	}{
		{"negative year", -1, 0, false},
		{"year zero", 0, 0, true},
		{"last year of first bucket", 1799, 0, true},
		{"second bucket opens", 1800, 1, true},
		{"second bucket closes", 1899, 1, true},
		{"third bucket opens", 1900, 2, true},
		{"third bucket closes", 1949, 2, true},
		{"fourth bucket opens", 1950, 3, true},
		{"fourth bucket closes", 1999, 3, true},
		{"final bucket opens", 2000, 4, true},
		{"final bucket includes its end", 2025, 4, true},
		{"past the final bucket", 2026, 0, false},
		{"far future prefix year", 6850, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := periodIndex(tt.year)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.idx, idx)
			}
		})
	}
}

func TestRegionPeriodCounts(t *testing.T) {
	tbl := NewTable([]VolcanoRecord{
		regionYear("Japan", 1707),
		regionYear("Japan", 2019),
		regionYear("Indonesia", 1920),
		regionYear("South America", 1410),
		regionYear("Alaska", 6850), // outside every bucket
		{Region: "Africa and Red Sea"},
		{EruptionYear: yearPtr(2001)}, // blank region
	})

	got := tbl.RegionPeriodCounts()

	want := &RegionPeriodTable{
		Periods: PeriodLabels(),
		Regions: []string{"Indonesia", "Japan", "South America"},
		Counts: [][]int{
			{0, 0, 1, 0, 0},
			{1, 0, 0, 0, 1},
			{1, 0, 0, 0, 0},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("cross-tabulation mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 1, got.Count("Japan", "[0, 1800)"))
	assert.Equal(t, 1, got.Count("Japan", "[2000, 2025]"))
	assert.Equal(t, 1, got.Count("Indonesia", "[1900, 1950)"))
	assert.Equal(t, 1, got.Count("South America", "[0, 1800)"))

	t.Run("rows are zero-filled", func(t *testing.T) {
		for _, row := range got.Counts {
			require.Len(t, row, len(got.Periods))
		}
		assert.Equal(t, 0, got.Count("Japan", "[1800, 1900)"))
	})

	t.Run("unknown labels count zero", func(t *testing.T) {
		assert.Equal(t, 0, got.Count("Alaska", "[2000, 2025]"))
		assert.Equal(t, 0, got.Count("Japan", "[3000, 4000)"))
	})
}

func TestRegionPeriodCounts_EmptyTable(t *testing.T) {
	got := NewTable(nil).RegionPeriodCounts()

	assert.Equal(t, PeriodLabels(), got.Periods)
	assert.Empty(t, got.Regions)
	assert.Empty(t, got.Counts)
}
