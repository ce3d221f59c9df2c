package prosody

import (
	"fmt"

	"github.com/rivo/uniseg"
)

// akshara is one prosodic syllable as the segmenter sees it, before weight
// classification.
type akshara struct {
	text  string
	onset int  // consonants before the vowel
	coda  int  // vowelless consonants attached after the vowel (pada-final halanta)
	long  bool // phonemically long vowel
	nasal bool // carries anusvara, chandrabindu, or visarga
	hasV  bool // a vowel (inherent or explicit) has been seen
}

// SegmentPada partitions one pada into ordered aksharas. A syllable boundary
// falls after each vowel-bearing unit; consonants joined by virama belong to
// the following vowel's syllable. Unrecognized characters are skipped and
// reported as warnings. A pada that yields zero syllables is reported via the
// empty slice; the caller decides whether that is fatal.
func SegmentPada(pada string) ([]akshara, []string) {
	var (
		syllables []akshara
		cur       akshara
		warnings  []string
	)

	flush := func() {
		if cur.text == "" {
			return
		}
		if cur.onset > 0 && !cur.hasV {
			// Trailing consonant(s) with no vowel of their own: attach to the
			// preceding syllable as its coda (e.g. the final म् of नम्).
			if len(syllables) > 0 {
				last := &syllables[len(syllables)-1]
				last.text += cur.text
				last.coda += cur.onset
			} else {
				warnings = append(warnings, fmt.Sprintf("dangling conjunct %q with no preceding syllable", cur.text))
			}
		} else {
			syllables = append(syllables, cur)
		}
		cur = akshara{}
	}

	rest := pada
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		runes := []rune(cluster)
		base := runes[0]

		switch {
		case base == ' ':
			// Word boundary: close a vowelless pending cluster onto the
			// previous syllable, but never split a syllable's text on it.
			if !cur.hasV {
				flush()
			}
			continue

		case isConsonant(base):
			if cur.hasV {
				flush()
			}
			cur.text += cluster
			cur.onset++
			applyMarks(&cur, runes[1:])

		case isIndependentVowel(base):
			flush()
			cur.text = cluster
			cur.hasV = true
			cur.long = isLongIndependentVowel(base)
			applyMarks(&cur, runes[1:])

		case base == runeAnusvara || base == runeVisarga || base == runeChandrabindu:
			// Normally these arrive as combining marks inside a cluster, but a
			// stray standalone occurrence still attaches to the open syllable.
			if cur.hasV {
				cur.text += cluster
				cur.nasal = true
			} else {
				warnings = append(warnings, fmt.Sprintf("stray mark %q outside a syllable", cluster))
			}

		case base == runeAvagraha:
			// Elision marker; prosodically silent.

		case isDevanagariDigit(base):
			// Verse numbers; prosodically silent.

		default:
			warnings = append(warnings, fmt.Sprintf("skipped unrecognized character %q", cluster))
		}
	}
	flush()

	return syllables, warnings
}

// applyMarks folds a cluster's combining marks into the current akshara.
func applyMarks(cur *akshara, marks []rune) {
	sawVirama := false
	for _, m := range marks {
		switch {
		case isVowelSign(m):
			cur.hasV = true
			cur.long = isLongVowelSign(m)
		case m == runeVirama:
			sawVirama = true
		case m == runeAnusvara, m == runeVisarga, m == runeChandrabindu:
			cur.nasal = true
		case m == runeNukta:
			// Spelling variant; no prosodic effect.
		}
	}
	// A consonant with neither an explicit vowel sign nor a virama carries the
	// inherent short a.
	if !cur.hasV && !sawVirama && cur.onset > 0 {
		cur.hasV = true
	}
}
