package model

// MeterDefinition describes one named classical meter. The catalog holds these
// immutably; they are shared read-only across all identification calls.
type MeterDefinition struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases,omitempty"`
	// SyllablesPerPada may vary across padas (e.g. Ushnik 8/8/12).
	SyllablesPerPada []int `yaml:"syllables_per_pada"`
	// PadaPattern is the canonical per-pada weight pattern, empty when the
	// meter only constrains counts (Anushtubh and the Vedic count meters).
	PadaPattern string `yaml:"pada_pattern,omitempty"`
}

// TotalSyllables is the syllable count across all padas.
func (m MeterDefinition) TotalSyllables() int {
	total := 0
	for _, n := range m.SyllablesPerPada {
		total += n
	}
	return total
}

// CanonicalPattern expands the per-pada pattern to the full verse, or ""
// when the meter constrains counts only.
func (m MeterDefinition) CanonicalPattern() string {
	if m.PadaPattern == "" {
		return ""
	}
	var out string
	for range m.SyllablesPerPada {
		out += m.PadaPattern
	}
	return out
}

// KnownVerseEntry maps a canonical verse opening to its meter name. Matched by
// substring containment against normalized input; table order is the tie-break.
type KnownVerseEntry struct {
	OpeningText string `yaml:"opening"`
	MeterName   string `yaml:"meter"`
}
