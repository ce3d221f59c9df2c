package culture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_CaseAndHyphenInsensitive(t *testing.T) {
	for _, name := range []string{"Anushtubh", "anushtubh", "ANUSHTUBH", "Anuṣṭubh"} {
		info, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, 32, info.Syllables)
	}

	info, ok := Lookup("shardula-vikridita")
	require.True(t, ok)
	assert.Equal(t, 76, info.Syllables)
}

func TestLookup_UnknownMeter(t *testing.T) {
	_, ok := Lookup("Unknown")
	assert.False(t, ok)
}

func TestFormatContext(t *testing.T) {
	text := FormatContext("Gayatri")
	assert.Contains(t, text, "Gayatri Metre Cultural Context")
	assert.Contains(t, text, "Savitr")
	assert.Contains(t, text, "24 syllables total")

	assert.Empty(t, FormatContext("NoSuchMeter"))
}
