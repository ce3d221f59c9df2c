package prosody

// Rune classification for the Devanagari block (U+0900..U+097F). Only the
// classes the segmenter cares about are distinguished; everything else in the
// block falls through to "unrecognized".

const (
	runeVirama       = '्' // ्
	runeChandrabindu = 'ँ' // ँ
	runeAnusvara     = 'ं' // ं
	runeVisarga      = 'ः' // ः
	runeNukta        = '़' // ़
	runeAvagraha     = 'ऽ' // ऽ
	runeDanda        = '।' // ।
	runeDoubleDanda  = '॥' // ॥
)

func isConsonant(r rune) bool {
	switch {
	case r >= 'क' && r <= 'ह': // क..ह
		return true
	case r >= 'क़' && r <= 'य़': // क़..य़ (nukta forms)
		return true
	}
	return false
}

func isIndependentVowel(r rune) bool {
	switch {
	case r >= 'ऄ' && r <= 'औ': // ऄ..औ
		return true
	case r == 'ॠ' || r == 'ॡ': // ॠ ॡ
		return true
	}
	return false
}

// isLongIndependentVowel reports whether an independent vowel is phonemically
// long. In Sanskrit e, ai, o, au are always long.
func isLongIndependentVowel(r rune) bool {
	switch r {
	case 'आ', // आ
		'ई', // ई
		'ऊ', // ऊ
		'ऍ', // ऍ
		'ए', // ए
		'ऐ', // ऐ
		'ऑ', // ऑ
		'ओ', // ओ
		'औ', // औ
		'ॠ', // ॠ
		'ॡ': // ॡ
		return true
	}
	return false
}

func isVowelSign(r rune) bool {
	switch {
	case r >= 'ा' && r <= 'ौ': // ा..ौ
		return true
	case r == 'ॢ' || r == 'ॣ': // ॢ ॣ
		return true
	}
	return false
}

func isLongVowelSign(r rune) bool {
	switch r {
	case 'ा', // ा
		'ी', // ी
		'ू', // ू
		'ॄ', // ॄ
		'े', // े
		'ै', // ै
		'ो', // ो
		'ौ', // ौ
		'ॣ': // ॣ
		return true
	}
	return false
}

func isDevanagariDigit(r rune) bool {
	return r >= '०' && r <= '९'
}
