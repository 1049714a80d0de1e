// Package catalog loads and queries the Holocene volcano catalog.
//
// # Data Source
//
// Records originate from the Smithsonian Institution Global Volcanism Program
// (GVP) "Volcanoes of the World" database, exported as a CSV file. The export
// is encoded in ISO 8859-1 (Latin-1), not UTF-8: volcano and country names
// carry accented characters ("Popocatépetl", "México") that decode as mojibake
// when read as UTF-8. The loader decodes the byte stream before parsing.
//
// # Export Layout
//
// The file begins with a one-line metadata banner (export title and date)
// followed by a header row. Both are skipped; data rows are interpreted by
// position, not by header text:
//
//	0  Volcano_Number       GVP identifier
//	1  Name
//	2  Country              surrounding whitespace trimmed on load
//	3  Region
//	4  Subregion
//	5  Landform
//	6  Primary_Type         e.g. "Stratovolcano", "Shield"
//	7  Activity_Evidence    e.g. "Eruption Observed", "Eruption Dated"
//	8  Last_Eruption        free text, see below
//	9  Lat                  WGS-84 decimal degrees
//	10 Lon                  WGS-84 decimal degrees
//	11 Elevation_m          meters above sea level, may be blank
//	12 Tectonic_Setting
//	13 Dominant_Rock_Type
//
// # Eruption Date Conventions
//
// Last_Eruption is free text in GVP house style: "1991 CE", "2021 CE",
// "6850 BCE", "Unknown", or blank. The catalog derives a numeric eruption
// year from the leading characters only: if the first up-to-four characters
// are all ASCII digits, they parse as a year; otherwise the year is absent.
// The rule is deliberately crude. "6850 BCE" yields 6850 even though it names
// a year before the common era, and "950 CE" yields nothing because the
// four-character window catches the space. Both follow from treating the
// digit prefix as the whole truth; see [ParseEruptionYear].
//
// # Missing Values
//
// Coordinates are mandatory: a row whose Lat or Lon is blank or unparseable
// is dropped entirely, so every loaded record can be mapped. All other gaps
// degrade per field. A blank or malformed Elevation_m leaves elevation absent
// (nil) rather than zero, because 0 is a legitimate elevation; the derived
// Elevation_km mirrors it. Textual "NaN" in a numeric cell counts as absent,
// matching the upstream export's missing-value spelling.
//
// # Historical Periods
//
// Region cross-tabulation buckets eruption years into five fixed periods:
// [0,1800), [1800,1900), [1900,1950), [1950,2000), and [2000,2025] with the
// final year inclusive. Years outside [0,2025] fall into no period and are
// excluded from the cross-tabulation.
package catalog
