package catalog

import (
	"math"
	"strconv"
	"strings"
)

// parseRow converts one positional data row into a VolcanoRecord.
// The caller guarantees len(row) >= columnCount. Returns ok=false when Lat
// or Lon is blank or unparseable; such rows are dropped by the loader.
func parseRow(row []string) (VolcanoRecord, bool) {
	lat, latOK := parseCoordinate(row[colLat])
	lon, lonOK := parseCoordinate(row[colLon])
	if !latOK || !lonOK {
		return VolcanoRecord{}, false
	}

	elevationM := parseOptionalFloat(row[colElevationM])
	var elevationKm *float64
	if elevationM != nil {
		km := *elevationM / 1000
		elevationKm = &km
	}

	return VolcanoRecord{
		VolcanoNumber:    strings.TrimSpace(row[colVolcanoNumber]),
		Name:             row[colName],
		Country:          strings.TrimSpace(row[colCountry]),
		Region:           row[colRegion],
		Subregion:        row[colSubregion],
		Landform:         row[colLandform],
		PrimaryType:      row[colPrimaryType],
		ActivityEvidence: row[colActivityEvidence],
		LastEruption:     row[colLastEruption],
		Lat:              lat,
		Lon:              lon,
		ElevationM:       elevationM,
		TectonicSetting:  row[colTectonicSetting],
		DominantRockType: row[colDominantRockType],

		ElevationKm:  elevationKm,
		EruptionYear: ParseEruptionYear(row[colLastEruption]),
	}, true
}

// parseCoordinate parses a decimal-degree cell. Blank cells, unparseable
// text, and the textual NaN/Inf spellings all report ok=false.
func parseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseOptionalFloat parses a numeric cell that is allowed to be missing.
// Returns nil rather than 0 on blank or malformed input so that absent and
// zero stay distinguishable (sea-level volcanoes have elevation 0).
func parseOptionalFloat(s string) *float64 {
	v, ok := parseCoordinate(s)
	if !ok {
		return nil
	}
	return &v
}

// ParseEruptionYear derives a numeric CE year from a GVP Last_Eruption cell.
// The first up-to-four characters must all be ASCII digits; anything else
// yields nil. The function is total: no input produces an error or a garbage
// year.
//
//	"1991 CE"  -> 1991
//	"6850 BCE" -> 6850 (BCE not distinguished by the prefix rule)
//	"950 CE"   -> nil (the window is "950 "; space fails the digit test)
//	"950"      -> 950 (shorter inputs use every character they have)
//	"Unknown"  -> nil
//	""         -> nil
//	"-500"     -> nil (sign is not a digit)
func ParseEruptionYear(lastEruption string) *int {
	prefix := lastEruption
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}
	if prefix == "" {
		return nil
	}

	year := 0
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c < '0' || c > '9' {
			return nil
		}
		year = year*10 + int(c-'0')
	}
	return &year
}
