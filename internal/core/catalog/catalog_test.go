package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_CatalogShape(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)
	require.NotEmpty(t, cat.Meters())

	// Every pattern meter's pada pattern length matches its declared counts.
	for _, m := range cat.Meters() {
		require.NotEmpty(t, m.SyllablesPerPada, m.Name)
		if m.PadaPattern == "" {
			continue
		}
		for _, n := range m.SyllablesPerPada {
			assert.Len(t, m.PadaPattern, n, m.Name)
		}
	}
}

func TestLookup_AliasesAndNormalization(t *testing.T) {
	cat, err := Load()
	require.NoError(t, err)

	for _, name := range []string{"Anushtubh", "ANUSHTUBH", "Shloka", "anushtup", "Anuṣṭubh"} {
		def, ok := cat.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "Anushtubh", def.Name)
	}

	_, ok := cat.Lookup("NoSuchMeter")
	assert.False(t, ok)
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, NormalizeName("Shardula-Vikridita"), NormalizeName("shardulavikridita"))
	assert.Equal(t, NormalizeName(" Vasanta Tilaka "), NormalizeName("vasantatilaka"))
}

func TestLoadKnownVerses_TableOrderPreserved(t *testing.T) {
	known, err := LoadKnownVerses()
	require.NoError(t, err)

	entries := known.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "धर्मक्षेत्रे कुरुक्षेत्रे", entries[0].OpeningText)
	assert.Equal(t, "Anushtubh", entries[0].MeterName)
}

func TestKnownVerses_MatchByContainment(t *testing.T) {
	known, err := LoadKnownVerses()
	require.NoError(t, err)

	entry, ok := known.Match("धर्मक्षेत्रे कुरुक्षेत्रे समवेता युयुत्सवः")
	require.True(t, ok)
	assert.Equal(t, "Anushtubh", entry.MeterName)

	_, ok = known.Match("कश्चित्कान्ताविरहगुरुणा")
	assert.False(t, ok)
}

func TestKnownVerses_YadaYadaEntryIsPreserved(t *testing.T) {
	// The table carries Trishtubh for this opening even though the verse is
	// an Anushtubh shloka; the lookup reports the table as-is.
	known, err := LoadKnownVerses()
	require.NoError(t, err)

	entry, ok := known.Match("यदा यदा हि धर्मस्य ग्लानिर्भवति भारत")
	require.True(t, ok)
	assert.Equal(t, "Trishtubh", entry.MeterName)
}
