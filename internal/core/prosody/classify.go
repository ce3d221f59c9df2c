package prosody

import "github.com/shlokavani/chandas/internal/core/model"

// ClassifyPada assigns metrical weight to each akshara of a pada and produces
// the final Syllable values. A syllable is Guru when any of:
//
//	(a) its vowel is phonemically long (ā ī ū ṝ e ai o au),
//	(b) it carries anusvara or visarga,
//	(c) its vowel is followed, before the next vowel of the pada, by a
//	    consonant conjunct (two or more consonants with no vowel between).
//
// The classical end-of-pada convention (final syllable counts as Guru for
// matching) is deliberately NOT applied here: the breakdown stays literal and
// the matcher applies the override on its own copy of the pattern.
func ClassifyPada(aksharas []akshara) []model.Syllable {
	out := make([]model.Syllable, len(aksharas))
	for i, a := range aksharas {
		weight := model.Laghu
		switch {
		case a.long:
			weight = model.Guru
		case a.nasal:
			weight = model.Guru
		case clusterAfter(aksharas, i) >= 2:
			weight = model.Guru
		}
		out[i] = model.Syllable{
			Text:     a.text,
			Weight:   weight,
			Position: i + 1,
		}
	}
	return out
}

// clusterAfter counts the consonants standing between syllable i's vowel and
// the next vowel of the pada: i's own coda plus the following syllable's
// onset. For the last syllable there is no next vowel, so only a conjunct
// coda of two or more closes the position.
func clusterAfter(aksharas []akshara, i int) int {
	n := aksharas[i].coda
	if i+1 < len(aksharas) {
		n += aksharas[i+1].onset
	}
	return n
}
