package model

// Identification provenance values for IdentificationResult.IdentifiedBy.
const (
	ByAlgorithm          = "algorithmic"
	ByKnownVerse         = "known_verse"
	ByLLM                = "llm"
	ByLLMReverified      = "llm_reverified"
	ByBoth               = "both"
	ByKnownVerseOverride = "known_verse_override"
)

// IdentificationResult is the outward shape of one identification. Results are
// produced fresh per request and never mutated after construction; the
// reconciliation engine builds a new result rather than patching one in place.
type IdentificationResult struct {
	ChandasName          string     `json:"chandas_name"`
	SyllableBreakdown    []Syllable `json:"syllable_breakdown"`
	LaghuGuruPattern     string     `json:"laghu_guru_pattern"`
	GanaPattern          string     `json:"gana_pattern"`
	SyllableCountPerPada []int      `json:"syllable_count_per_pada"`
	Confidence           float64    `json:"confidence"`
	Explanation          string     `json:"explanation"`
	// Process is the ordered step log of how the name was arrived at.
	Process      []string `json:"identification_process"`
	IdentifiedBy string   `json:"identified_by"`
	Warnings     []string `json:"warnings,omitempty"`
}
