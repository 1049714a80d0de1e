package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "testdata/volcanoes_sample.csv"

func recordByName(t *testing.T, tbl Table, name string) VolcanoRecord {
	t.Helper()
	for _, rec := range tbl.Records() {
		if rec.Name == name {
			return rec
		}
	}
	t.Fatalf("no record named %q", name)
	return VolcanoRecord{}
}

func recordNames(tbl Table) []string {
	names := make([]string, 0, tbl.Len())
	for _, rec := range tbl.Records() {
		names = append(names, rec.Name)
	}
	return names
}

func TestLoad(t *testing.T) {
	tbl, stats, err := Load(sampleCSV)
	require.NoError(t, err)

	assert.Equal(t, LoadStats{
		RowsRead:           16,
		Loaded:             13,
		DroppedCoordinates: 2,
		SkippedMalformed:   1,
		ElevationAbsent:    1,
		EruptionYearAbsent: 3,
	}, stats)
	assert.Equal(t, 13, tbl.Len())
	assert.False(t, tbl.IsEmpty())

	t.Run("latin-1 text decodes", func(t *testing.T) {
		rec := recordByName(t, tbl, "Popocatépetl")
		assert.Equal(t, "México", rec.Country)
		assert.Equal(t, "México and Central America", rec.Region)
	})

	t.Run("quoted comma stays in one field", func(t *testing.T) {
		rec := recordByName(t, tbl, "Cerro del León, Sur")
		assert.Equal(t, "Chile", rec.Country)
		require.NotNil(t, rec.EruptionYear)
		assert.Equal(t, 1410, *rec.EruptionYear)
	})

	t.Run("country whitespace trimmed", func(t *testing.T) {
		rec := recordByName(t, tbl, "Ebeko")
		assert.Equal(t, "Russia", rec.Country)
	})

	t.Run("derived fields", func(t *testing.T) {
		merapi := recordByName(t, tbl, "Merapi")
		require.NotNil(t, merapi.ElevationKm)
		assert.InEpsilon(t, 2.91, *merapi.ElevationKm, 1e-9)
		require.NotNil(t, merapi.EruptionYear)
		assert.Equal(t, 2021, *merapi.EruptionYear)

		// "950 CE" derives nothing: the four-character window holds a space.
		aso := recordByName(t, tbl, "Aso")
		assert.Equal(t, "950 CE", aso.LastEruption)
		assert.Nil(t, aso.EruptionYear)

		wrangell := recordByName(t, tbl, "Wrangell")
		require.NotNil(t, wrangell.EruptionYear)
		assert.Equal(t, 6850, *wrangell.EruptionYear)

		ambrym := recordByName(t, tbl, "Ambrym")
		assert.Nil(t, ambrym.ElevationM)
		assert.Nil(t, ambrym.ElevationKm)
	})

	t.Run("excluded rows never load", func(t *testing.T) {
		names := recordNames(tbl)
		assert.NotContains(t, names, "Ghost Seamount")
		assert.NotContains(t, names, "Dry Cone")
		assert.NotContains(t, names, "Stub Volcano")
	})
}

func TestLoad_MissingFile(t *testing.T) {
	tbl, stats, err := Load("testdata/no_such_file.csv")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceNotFound)
	assert.True(t, tbl.IsEmpty())
	assert.Equal(t, LoadStats{}, stats)
}

func TestRead_EmptyInput(t *testing.T) {
	tbl, stats, err := Read(strings.NewReader(""))

	require.NoError(t, err)
	assert.True(t, tbl.IsEmpty())
	assert.Equal(t, LoadStats{}, stats)
}

func TestRead_HeaderOnly(t *testing.T) {
	in := "Banner line\nVolcano Number,Volcano Name,Country\n"
	tbl, stats, err := Read(strings.NewReader(in))

	require.NoError(t, err)
	assert.True(t, tbl.IsEmpty())
	assert.Equal(t, 0, stats.RowsRead)
}
