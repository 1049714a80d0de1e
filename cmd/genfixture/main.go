// Command genfixture samples a full GVP volcano export down to a small CSV
// fixture for the test suites. Output preserves the metadata banner, the
// header row, the original row order, and the Latin-1 encoding, so fixtures
// exercise the same decode path as production files. It then loads the
// fixture through the catalog package and prints the aggregate numbers the
// tests assert against.
//
// Usage:
//
//	go run ./cmd/genfixture -in volcanoes.csv -out internal/catalog/testdata/volcanoes_sample.csv -n 40
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/encoding/charmap"

	"github.com/couchcryptid/volcano-dashboard/internal/catalog"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	in := flag.String("in", "", "path to the full GVP volcano export")
	out := flag.String("out", "", "output path for the sampled fixture")
	n := flag.Int("n", 40, "number of data rows to sample")
	seed := flag.Int64("seed", 1, "sampling seed; fixed for reproducible fixtures")
	flag.Parse()

	if *in == "" || *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -in, -out")
	}

	rows, err := readRows(*in)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *in, err)
	}
	if len(rows) < 3 {
		return fmt.Errorf("%s has no data rows after banner and header", *in)
	}

	banner, header, data := rows[0], rows[1], rows[2:]
	sampled := sampleRows(data, *n, *seed)
	log.Printf("sampled %d of %d data rows", len(sampled), len(data))

	if err := writeRows(*out, banner, header, sampled); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	log.Printf("wrote fixture: %s", *out)

	printStats(*out)
	return nil
}

func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

// sampleRows picks n rows without replacement, keeping original order so
// fixtures stay diffable against the source file. n >= len(data) keeps
// everything.
func sampleRows(data [][]string, n int, seed int64) [][]string {
	if n >= len(data) {
		return data
	}

	rng := rand.New(rand.NewSource(seed))
	picked := rng.Perm(len(data))[:n]
	sort.Ints(picked)

	sampled := make([][]string, 0, n)
	for _, idx := range picked {
		sampled = append(sampled, data[idx])
	}
	return sampled
}

func writeRows(path string, banner, header []string, data [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Encode back to Latin-1; every rune round-trips because the source was
	// decoded from Latin-1.
	w := csv.NewWriter(charmap.ISO8859_1.NewEncoder().Writer(f))
	if err := w.Write(banner); err != nil {
		return err
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range data {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// printStats loads the fixture through the real catalog path and prints the
// numbers test assertions are written against.
func printStats(path string) {
	tbl, stats, err := catalog.Load(path)
	if err != nil {
		log.Printf("stats: load failed: %v", err)
		return
	}

	fmt.Println("\n=== Stats for updating test assertions ===")
	fmt.Printf("Loaded: %d of %d data rows (dropped %d for coordinates, %d malformed)\n",
		stats.Loaded, stats.RowsRead, stats.DroppedCoordinates, stats.SkippedMalformed)
	fmt.Printf("Elevation absent: %d, eruption year absent: %d\n",
		stats.ElevationAbsent, stats.EruptionYearAbsent)

	if minYear, maxYear, ok := tbl.EruptionYearBounds(); ok {
		fmt.Printf("Year bounds: %d to %d\n", minYear, maxYear)
	} else {
		fmt.Println("Year bounds: none (no derivable years)")
	}
	fmt.Printf("Recent eruptions [%d, %d]: %d\n",
		catalog.DefaultEruptionRangeStart, catalog.DefaultEruptionRangeEnd, tbl.RecentEruptions().Len())

	countries := tbl.Countries()
	fmt.Printf("Countries (%d): %v\n", len(countries), countries)
	for _, country := range countries {
		counts := tbl.ActivityCounts(country)
		if len(counts) == 0 {
			continue
		}
		fmt.Printf("  %s:", country)
		evidences := make([]string, 0, len(counts))
		for e := range counts {
			evidences = append(evidences, e)
		}
		sort.Strings(evidences)
		for _, e := range evidences {
			fmt.Printf(" %q=%d", e, counts[e])
		}
		fmt.Println()
	}

	crosstab := tbl.RegionPeriodCounts()
	fmt.Printf("Crosstab: %d regions x %d periods\n", len(crosstab.Regions), len(crosstab.Periods))
	for i, region := range crosstab.Regions {
		fmt.Printf("  %s: %v\n", region, crosstab.Counts[i])
	}
}
