package dashboard

import (
	"fmt"

	"github.com/couchcryptid/volcano-dashboard/internal/catalog"
)

// Recent-eruptions map window and styling. The camera starts over the
// equatorial Pacific at world zoom so the Ring of Fire is visible without
// panning.
const (
	RecentMapStartYear = 2015
	RecentMapEndYear   = 2025

	mapPointRadiusMeters = 40000
)

var (
	mapPointColor      = Color{R: 255, G: 69, B: 0, A: 180}
	mapInitialViewport = MapViewport{Lat: 10, Lon: 0, Zoom: 1}
)

// BuildRecentEruptionsMap plots every volcano with an eruption in the
// [RecentMapStartYear, RecentMapEndYear] window. Coordinates are always
// present on loaded records, so every matched record becomes a point.
func BuildRecentEruptionsMap(tbl *catalog.Table) MapView {
	matched := tbl.EruptionsInYearRange(RecentMapStartYear, RecentMapEndYear)

	points := make([]MapPoint, 0, matched.Len())
	for _, rec := range matched.Records() {
		points = append(points, MapPoint{
			Name:         rec.Name,
			Country:      rec.Country,
			LastEruption: rec.LastEruption,
			Lat:          rec.Lat,
			Lon:          rec.Lon,
			Tooltip:      fmt.Sprintf("%s\nCountry: %s\nLast Eruption: %s", rec.Name, rec.Country, rec.LastEruption),
		})
	}

	return MapView{
		Title:             "Volcanoes That Have Erupted in the Last Decade",
		StartYear:         RecentMapStartYear,
		EndYear:           RecentMapEndYear,
		InitialView:       mapInitialViewport,
		PointRadiusMeters: mapPointRadiusMeters,
		PointColor:        mapPointColor,
		Points:            points,
	}
}
