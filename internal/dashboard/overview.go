package dashboard

import (
	"github.com/couchcryptid/volcano-dashboard/internal/catalog"
)

// Year-slider bounds offered to the UI. The histogram endpoint itself
// accepts years outside this window; the slider just constrains what the
// stock UI asks for.
const (
	SliderMinYear      = 1800
	SliderMaxYear      = 2025
	SliderDefaultStart = 1900
	SliderDefaultEnd   = 2025
)

// BuildOverview assembles the landing-section model. It is the one view
// built even when the catalog is empty: CatalogEmpty tells the UI to skip
// every other section.
func BuildOverview(tbl *catalog.Table) OverviewView {
	view := OverviewView{
		Title:        "Volcano Catalog Dashboard",
		RecordCount:  tbl.Len(),
		CatalogEmpty: tbl.IsEmpty(),
		Countries:    tbl.Countries(),
		YearSlider: SliderConfig{
			Min:          SliderMinYear,
			Max:          SliderMaxYear,
			DefaultStart: SliderDefaultStart,
			DefaultEnd:   SliderDefaultEnd,
		},
	}
	if minYear, maxYear, ok := tbl.EruptionYearBounds(); ok {
		view.MinEruptionYear = &minYear
		view.MaxEruptionYear = &maxYear
	}
	return view
}
