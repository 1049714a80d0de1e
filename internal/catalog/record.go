package catalog

// Column positions in a GVP export data row. Rows are positional; header
// text varies between exports and is ignored.
const (
	colVolcanoNumber = iota
	colName
	colCountry
	colRegion
	colSubregion
	colLandform
	colPrimaryType
	colActivityEvidence
	colLastEruption
	colLat
	colLon
	colElevationM
	colTectonicSetting
	colDominantRockType

	columnCount
)

// VolcanoRecord is the canonical representation of one volcano after loading.
// Lat and Lon are always present; rows without usable coordinates are dropped
// at load time. Pointer fields are nil when the source value was blank or
// unparseable.
type VolcanoRecord struct {
	VolcanoNumber    string
	Name             string
	Country          string // whitespace-trimmed
	Region           string
	Subregion        string
	Landform         string
	PrimaryType      string
	ActivityEvidence string
	LastEruption     string // raw GVP text, e.g. "1991 CE"
	Lat              float64
	Lon              float64
	ElevationM       *float64
	TectonicSetting  string
	DominantRockType string

	// Derived on load.
	ElevationKm  *float64 // ElevationM / 1000
	EruptionYear *int     // digit prefix of LastEruption, see ParseEruptionYear
}

// Table is an immutable collection of volcano records. Query methods return
// fresh tables or aggregates and never mutate the receiver, so a single Table
// is safe for concurrent readers.
type Table struct {
	records []VolcanoRecord
}

// NewTable builds a table from records. The slice is copied so later mutation
// of the argument cannot reach into the table.
func NewTable(records []VolcanoRecord) Table {
	copied := make([]VolcanoRecord, len(records))
	copy(copied, records)
	return Table{records: copied}
}

// Len reports the number of records in the table.
func (t Table) Len() int {
	return len(t.records)
}

// IsEmpty reports whether the table holds no records, either because the
// source was empty or because the load failed.
func (t Table) IsEmpty() bool {
	return len(t.records) == 0
}

// Records returns a copy of the table's records in load order.
func (t Table) Records() []VolcanoRecord {
	copied := make([]VolcanoRecord, len(t.records))
	copy(copied, t.records)
	return copied
}
