package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
)

// ErrSourceNotFound indicates the catalog source file could not be opened.
// Callers are expected to keep running with the empty table returned
// alongside it; the dashboard degrades rather than aborts.
var ErrSourceNotFound = errors.New("volcano catalog source not found")

// leadingRows is the number of non-data rows at the top of a GVP export:
// the metadata banner plus the header row.
const leadingRows = 2

// LoadStats summarizes what one load pass kept, dropped, and degraded.
type LoadStats struct {
	RowsRead           int // data rows seen after the leading rows
	Loaded             int // records that made it into the table
	DroppedCoordinates int // rows dropped for a blank or unparseable Lat/Lon
	SkippedMalformed   int // rows skipped for too few columns or CSV syntax errors
	ElevationAbsent    int // loaded records whose Elevation_m degraded to absent
	EruptionYearAbsent int // loaded records with no derivable eruption year
}

// Load reads the catalog CSV at path and builds the canonical table.
// When the file cannot be opened it returns an empty table and an error
// wrapping ErrSourceNotFound; any other failure mid-read also yields an
// empty table so callers never see a half-loaded catalog.
func Load(path string) (Table, LoadStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, LoadStats{}, fmt.Errorf("%w: %v", ErrSourceNotFound, err)
	}
	defer f.Close()

	tbl, stats, err := Read(f)
	if err != nil {
		return Table{}, stats, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return tbl, stats, nil
}

// Read parses GVP export content from r. The stream is decoded from Latin-1,
// the metadata banner and header row are skipped, and each remaining row is
// parsed positionally. Rows with too few columns or broken CSV syntax are
// skipped and counted; rows without usable coordinates are dropped.
func Read(r io.Reader) (Table, LoadStats, error) {
	cr := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(r))
	cr.FieldsPerRecord = -1 // exports are ragged; row length is checked per record
	cr.LazyQuotes = true

	var (
		records []VolcanoRecord
		stats   LoadStats
		skip    = leadingRows
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				stats.SkippedMalformed++
				continue
			}
			return Table{}, stats, fmt.Errorf("read csv: %w", err)
		}
		if skip > 0 {
			skip--
			continue
		}

		stats.RowsRead++
		if len(row) < columnCount {
			stats.SkippedMalformed++
			continue
		}

		rec, ok := parseRow(row)
		if !ok {
			stats.DroppedCoordinates++
			continue
		}
		if rec.ElevationM == nil {
			stats.ElevationAbsent++
		}
		if rec.EruptionYear == nil {
			stats.EruptionYearAbsent++
		}
		records = append(records, rec)
	}

	stats.Loaded = len(records)
	return Table{records: records}, stats, nil
}
