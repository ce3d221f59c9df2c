package catalog

import (
	"fmt"

	"github.com/shlokavani/chandas/internal/core/model"
)

// MeterUnknown is the reportable no-match outcome; it is not an error.
const MeterUnknown = "Unknown"

// MatchResult is the deterministic matcher's verdict on a verse.
type MatchResult struct {
	MeterName  string
	Confidence float64
	Exact      bool
	Steps      []string
}

// Match runs the two-stage matching procedure: exact canonical-pattern match
// first, then a count-based shortlist with per-position scoring. The classical
// end-of-pada convention is applied here, to a matching copy of the pattern,
// so the literal breakdown stays untouched.
func (c *Catalog) Match(v model.Verse) MatchResult {
	pattern := matchingPattern(v)
	counts := v.SyllableCounts()

	// Stage 1: exact pattern.
	for _, m := range c.meters {
		cp := m.CanonicalPattern()
		if cp != "" && cp == pattern {
			return MatchResult{
				MeterName:  m.Name,
				Confidence: 1.0,
				Exact:      true,
				Steps:      []string{fmt.Sprintf("exact pattern match: %s", m.Name)},
			}
		}
	}

	// Stage 2: count-based shortlist.
	var candidates []model.MeterDefinition
	for _, m := range c.meters {
		if equalCounts(m.SyllablesPerPada, counts) {
			candidates = append(candidates, m)
		}
	}

	switch len(candidates) {
	case 0:
		return MatchResult{
			MeterName:  MeterUnknown,
			Confidence: 0.0,
			Steps:      []string{fmt.Sprintf("no catalog meter with syllable counts %v", counts)},
		}
	case 1:
		return MatchResult{
			MeterName:  candidates[0].Name,
			Confidence: 0.85,
			Steps:      []string{fmt.Sprintf("unique syllable-count match: %s %v", candidates[0].Name, counts)},
		}
	}

	// Ambiguous counts: score each candidate by matching syllable positions
	// against its canonical pattern. Remaining ties resolve to catalog order.
	best := candidates[0]
	bestScore := positionScore(pattern, best.CanonicalPattern())
	for _, m := range candidates[1:] {
		if s := positionScore(pattern, m.CanonicalPattern()); s > bestScore {
			best, bestScore = m, s
		}
	}

	confidence := float64(bestScore) / float64(len(pattern))
	if confidence < 0.5 {
		confidence = 0.5
	}
	return MatchResult{
		MeterName:  best.Name,
		Confidence: confidence,
		Steps: []string{fmt.Sprintf("%d meters share counts %v; best position score %d/%d: %s",
			len(candidates), counts, bestScore, len(pattern), best.Name)},
	}
}

// matchingPattern is the verse pattern with the final syllable of every pada
// treated as Guru, per the classical convention.
func matchingPattern(v model.Verse) string {
	var out []byte
	for _, p := range v.Padas {
		pat := []byte(p.Pattern())
		if len(pat) > 0 {
			pat[len(pat)-1] = 'G'
		}
		out = append(out, pat...)
	}
	return string(out)
}

// positionScore counts positions where the two patterns agree. A meter with
// no canonical pattern scores zero; it can only win the shortlist through
// catalog order when every candidate scores zero.
func positionScore(pattern, canonical string) int {
	if canonical == "" || len(canonical) != len(pattern) {
		return 0
	}
	score := 0
	for i := range pattern {
		if pattern[i] == canonical[i] {
			score++
		}
	}
	return score
}

func equalCounts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
