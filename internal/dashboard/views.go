// Package dashboard shapes catalog query results into render-ready view
// models. Builders are pure: they read a table, never mutate it, and leave
// all drawing to the consuming UI.
package dashboard

// HistogramView is the model for the eruption-frequency section. BinEdges
// has one more element than Counts; both are empty when nothing matched the
// year range. DatasetMinYear/DatasetMaxYear describe the whole catalog, not
// the filtered window, so the UI can caption the full span.
type HistogramView struct {
	Title          string    `json:"title"`
	XLabel         string    `json:"xLabel"`
	YLabel         string    `json:"yLabel"`
	StartYear      int       `json:"startYear"`
	EndYear        int       `json:"endYear"`
	BinEdges       []float64 `json:"binEdges"`
	Counts         []int     `json:"counts"`
	Total          int       `json:"total"`
	DatasetMinYear *int      `json:"datasetMinYear,omitempty"`
	DatasetMaxYear *int      `json:"datasetMaxYear,omitempty"`
	DatasetCaption string    `json:"datasetCaption,omitempty"`
}

// ActivityView is the model for the per-country activity-evidence bar chart.
type ActivityView struct {
	Country string         `json:"country"`
	Title   string         `json:"title"`
	Items   []ActivityItem `json:"items"`
	Total   int            `json:"total"`
}

// ActivityItem is one bar: an evidence category, its volcano count, and the
// pre-rendered caption line.
type ActivityItem struct {
	Evidence string `json:"evidence"`
	Count    int    `json:"count"`
	Label    string `json:"label"`
}

// MapView is the model for the recent-eruptions scatter map. Styling fields
// travel with the data so every client renders the same map.
type MapView struct {
	Title             string      `json:"title"`
	StartYear         int         `json:"startYear"`
	EndYear           int         `json:"endYear"`
	InitialView       MapViewport `json:"initialView"`
	PointRadiusMeters float64     `json:"pointRadiusMeters"`
	PointColor        Color       `json:"pointColor"`
	Points            []MapPoint  `json:"points"`
}

// MapViewport is the initial camera position for the map.
type MapViewport struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Zoom int     `json:"zoom"`
}

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// MapPoint is one volcano on the map. Tooltip is pre-rendered text with
// newline separators.
type MapPoint struct {
	Name         string  `json:"name"`
	Country      string  `json:"country"`
	LastEruption string  `json:"lastEruption"`
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	Tooltip      string  `json:"tooltip"`
}

// RegionPeriodView is the model for the eruptions-by-region cross-tab table.
// Each row's Counts align positionally with Periods.
type RegionPeriodView struct {
	Title   string            `json:"title"`
	Periods []string          `json:"periods"`
	Rows    []RegionPeriodRow `json:"rows"`
}

// RegionPeriodRow is one region's eruption counts per historical period.
type RegionPeriodRow struct {
	Region string `json:"region"`
	Counts []int  `json:"counts"`
}

// OverviewView is the model for the dashboard landing section: catalog size,
// the year span present in the data, the country selection domain, and the
// year-slider configuration.
type OverviewView struct {
	Title           string       `json:"title"`
	RecordCount     int          `json:"recordCount"`
	CatalogEmpty    bool         `json:"catalogEmpty"`
	MinEruptionYear *int         `json:"minEruptionYear,omitempty"`
	MaxEruptionYear *int         `json:"maxEruptionYear,omitempty"`
	Countries       []string     `json:"countries"`
	YearSlider      SliderConfig `json:"yearSlider"`
}

// SliderConfig describes the year-range slider offered by the UI.
type SliderConfig struct {
	Min          int `json:"min"`
	Max          int `json:"max"`
	DefaultStart int `json:"defaultStart"`
	DefaultEnd   int `json:"defaultEnd"`
}
