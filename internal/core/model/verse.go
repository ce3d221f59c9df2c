package model

import "errors"

// ErrInvalidInput is returned when a verse is empty, whitespace-only, or
// normalizes to zero padas.
var ErrInvalidInput = errors.New("invalid verse input")

// Weight is the metrical weight of a syllable.
type Weight string

const (
	Laghu Weight = "laghu"
	Guru  Weight = "guru"
)

// Char returns the single-letter pattern form of the weight.
func (w Weight) Char() byte {
	if w == Guru {
		return 'G'
	}
	return 'L'
}

// Syllable is one akshara of a pada. Position is 1-based within the pada.
// Immutable once produced by the segmenter.
type Syllable struct {
	Text     string `json:"syllable"`
	Weight   Weight `json:"type"`
	Position int    `json:"position"`
}

// Pada is one verse quarter: an ordered syllable sequence with contiguous
// positions starting at 1.
type Pada struct {
	Text      string
	Syllables []Syllable
}

// Pattern returns the pada's weight pattern over the {L, G} alphabet.
func (p Pada) Pattern() string {
	buf := make([]byte, len(p.Syllables))
	for i, s := range p.Syllables {
		buf[i] = s.Weight.Char()
	}
	return string(buf)
}

// Verse is an ordered sequence of independently segmented padas.
type Verse struct {
	Padas []Pada
	// Warnings collects non-fatal segmentation diagnostics (skipped
	// characters and the like).
	Warnings []string
}

// Pattern concatenates the per-pada weight patterns in verse order.
func (v Verse) Pattern() string {
	var out string
	for _, p := range v.Padas {
		out += p.Pattern()
	}
	return out
}

// SyllableCounts returns the syllable count of each pada in order.
func (v Verse) SyllableCounts() []int {
	counts := make([]int, len(v.Padas))
	for i, p := range v.Padas {
		counts[i] = len(p.Syllables)
	}
	return counts
}

// AllSyllables flattens the verse's syllables in reading order.
func (v Verse) AllSyllables() []Syllable {
	var out []Syllable
	for _, p := range v.Padas {
		out = append(out, p.Syllables...)
	}
	return out
}
