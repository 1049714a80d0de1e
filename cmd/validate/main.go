// Command validate performs integrity checks over a volcano catalog CSV.
// It loads the file through the catalog package, re-verifies the load
// invariants and query consistency, and cross-checks row, country, and
// derived-field tallies against an independent dataframe read of the same
// file.
//
// Usage:
//
//	go run ./cmd/validate -csv volcanoes.csv
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding/charmap"

	"github.com/couchcryptid/volcano-dashboard/internal/catalog"
)

// Column positions in a GVP export data row, mirroring the catalog loader.
const (
	colCountry = 2
	colLat     = 9
	colLon     = 10
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	csvPath := flag.String("csv", "volcanoes.csv", "path to the volcano catalog CSV")
	flag.Parse()

	if *csvPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*csvPath); code != 0 {
		os.Exit(code)
	}
}

func run(csvPath string) int {
	fmt.Println("=== Volcano Catalog Integrity Validation ===")
	fmt.Println()

	tbl, stats, err := catalog.Load(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load catalog: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateLoadInvariants(tbl),
		validateQueryConsistency(tbl),
		validateDataframeParity(csvPath, tbl, stats),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d loaded of %d data rows (%d dropped for coordinates, %d malformed)\n",
		stats.Loaded, stats.RowsRead, stats.DroppedCoordinates, stats.SkippedMalformed)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Load Invariants ──
// Every loaded record satisfies the catalog's post-load guarantees.

func validateLoadInvariants(tbl catalog.Table) *phase {
	p := &phase{name: "Phase 1: Load Invariants (derived fields)"}

	for i, rec := range tbl.Records() {
		if rec.Lat < -90 || rec.Lat > 90 {
			p.errorf("record %d (%s): Lat %g outside [-90, 90]", i, rec.Name, rec.Lat)
		}
		if rec.Lon < -180 || rec.Lon > 180 {
			p.errorf("record %d (%s): Lon %g outside [-180, 180]", i, rec.Name, rec.Lon)
		}
		if rec.Country != strings.TrimSpace(rec.Country) {
			p.errorf("record %d (%s): Country %q not trimmed", i, rec.Name, rec.Country)
		}

		expected := catalog.ParseEruptionYear(rec.LastEruption)
		if !ptrIntEq(rec.EruptionYear, expected) {
			p.errorf("record %d (%s): EruptionYear %s does not match re-derivation %s from %q",
				i, rec.Name, ptrInt(rec.EruptionYear), ptrInt(expected), rec.LastEruption)
		}
		if rec.EruptionYear != nil && (*rec.EruptionYear < 0 || *rec.EruptionYear > 9999) {
			p.errorf("record %d (%s): EruptionYear %d outside digit-derivable domain", i, rec.Name, *rec.EruptionYear)
		}

		switch {
		case rec.ElevationM == nil && rec.ElevationKm != nil:
			p.errorf("record %d (%s): ElevationKm present without ElevationM", i, rec.Name)
		case rec.ElevationM != nil && rec.ElevationKm == nil:
			p.errorf("record %d (%s): ElevationKm absent despite ElevationM %g", i, rec.Name, *rec.ElevationM)
		case rec.ElevationM != nil && !floatEq(*rec.ElevationKm, *rec.ElevationM/1000):
			p.errorf("record %d (%s): ElevationKm %g != ElevationM/1000 (%g)", i, rec.Name, *rec.ElevationKm, *rec.ElevationM/1000)
		}
	}
	return p
}

// ── Phase 2: Query Consistency ──
// The query operations agree with each other and with a direct scan.

func validateQueryConsistency(tbl catalog.Table) *phase {
	p := &phase{name: "Phase 2: Query Consistency (cross-checks)"}

	records := tbl.Records()
	withYear := 0
	for _, rec := range records {
		if rec.EruptionYear != nil {
			withYear++
		}
	}

	minYear, maxYear, ok := tbl.EruptionYearBounds()
	if ok != (withYear > 0) {
		p.errorf("EruptionYearBounds ok=%v but %d records have years", ok, withYear)
	}
	if ok {
		if got := tbl.EruptionsInYearRange(minYear, maxYear).Len(); got != withYear {
			p.errorf("EruptionsInYearRange(%d, %d) returned %d records, want %d", minYear, maxYear, got, withYear)
		}
		for i, rec := range records {
			if rec.EruptionYear != nil && (*rec.EruptionYear < minYear || *rec.EruptionYear > maxYear) {
				p.errorf("record %d (%s): year %d outside reported bounds [%d, %d]", i, rec.Name, *rec.EruptionYear, minYear, maxYear)
			}
		}
	}

	if a, b := tbl.RecentEruptions().Len(), tbl.EruptionsInYearRange(catalog.DefaultEruptionRangeStart, catalog.DefaultEruptionRangeEnd).Len(); a != b {
		p.errorf("RecentEruptions returned %d records, explicit default range returned %d", a, b)
	}

	countries := tbl.Countries()
	if !sort.StringsAreSorted(countries) {
		p.errorf("Countries() is not sorted")
	}
	countryTotals := 0
	for _, c := range countries {
		for _, n := range tbl.ActivityCounts(c) {
			countryTotals += n
		}
	}
	if countryTotals > tbl.Len() {
		p.errorf("activity counts across countries total %d, exceeding %d records", countryTotals, tbl.Len())
	}

	crosstab := tbl.RegionPeriodCounts()
	inBuckets := 0
	for _, rec := range records {
		if rec.Region == "" || rec.EruptionYear == nil {
			continue
		}
		if y := *rec.EruptionYear; y >= 0 && y <= 2025 {
			inBuckets++
		}
	}
	cellSum := 0
	for i, row := range crosstab.Counts {
		if len(row) != len(crosstab.Periods) {
			p.errorf("crosstab row %d (%s) has %d cells, want %d", i, crosstab.Regions[i], len(row), len(crosstab.Periods))
		}
		for _, n := range row {
			cellSum += n
		}
	}
	if cellSum != inBuckets {
		p.errorf("crosstab cells total %d, want %d bucketed records", cellSum, inBuckets)
	}
	return p
}

// ── Phase 3: Dataframe Parity ──
// An independent dataframe read of the same file agrees with the catalog on
// row counts, coordinate filtering, and country tallies.

func validateDataframeParity(csvPath string, tbl catalog.Table, stats catalog.LoadStats) *phase {
	p := &phase{name: "Phase 3: Dataframe Parity (gota recount)"}

	rows, err := readDataframeRows(csvPath)
	if err != nil {
		p.errorf("dataframe read: %v", err)
		return p
	}

	if len(rows) != stats.RowsRead {
		p.errorf("dataframe sees %d data rows, loader saw %d", len(rows), stats.RowsRead)
	}

	kept := 0
	countryCounts := make(map[string]int)
	for _, row := range rows {
		if len(row) <= colLon {
			continue
		}
		if !coordinateOK(row[colLat]) || !coordinateOK(row[colLon]) {
			continue
		}
		kept++
		if c := strings.TrimSpace(row[colCountry]); c != "" {
			countryCounts[c]++
		}
	}
	if kept != tbl.Len() {
		p.errorf("dataframe recount keeps %d rows, catalog loaded %d", kept, tbl.Len())
	}

	recount := make(map[string]int)
	for _, rec := range tbl.Records() {
		if rec.Country != "" {
			recount[rec.Country]++
		}
	}
	for c, n := range countryCounts {
		if recount[c] != n {
			p.errorf("country %q: dataframe counts %d records, catalog has %d", c, n, recount[c])
		}
	}
	for c := range recount {
		if _, ok := countryCounts[c]; !ok {
			p.errorf("country %q present in catalog but not in dataframe recount", c)
		}
	}
	return p
}

// readDataframeRows reads the catalog through gota with type detection off,
// so every cell comes back as its raw string. The metadata banner is
// stripped before the dataframe parse; gota consumes the header row itself.
func readDataframeRows(csvPath string) ([][]string, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	decoded, err := io.ReadAll(charmap.ISO8859_1.NewDecoder().Reader(f))
	if err != nil {
		return nil, err
	}
	content := string(decoded)
	nl := strings.IndexByte(content, '\n')
	if nl < 0 {
		return nil, fmt.Errorf("no data after metadata banner in %s", csvPath)
	}

	df := dataframe.ReadCSV(strings.NewReader(content[nl+1:]),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, df.Err
	}

	records := df.Records()
	if len(records) < 1 {
		return nil, fmt.Errorf("dataframe has no rows")
	}
	return records[1:], nil // first row is the header names
}

// coordinateOK mirrors the catalog's coordinate rule: parseable and finite.
func coordinateOK(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ── Helpers ──

func floatEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func ptrIntEq(a, b *int) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return *a == *b
}

func ptrInt(v *int) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d", *v)
}
