package prosody

import "strings"

// ganaNames is the bijective mapping from 3-syllable weight triplets to the 8
// canonical gana names.
var ganaNames = map[string]string{
	"LLL": "na",
	"LLG": "sa",
	"LGL": "ja",
	"LGG": "ya",
	"GLL": "bha",
	"GLG": "ra",
	"GGL": "ta",
	"GGG": "ma",
}

// DeriveGanas partitions a weight pattern into consecutive non-overlapping
// triplets and maps each to its gana name. A trailing remainder of one or two
// syllables is returned verbatim, never padded or dropped.
func DeriveGanas(pattern string) (names []string, remainder string) {
	i := 0
	for ; i+3 <= len(pattern); i += 3 {
		names = append(names, ganaNames[pattern[i:i+3]])
	}
	return names, pattern[i:]
}

// FormatGanas renders a pada's gana sequence the way it is reported: names
// joined by dashes with any unclassified remainder appended, e.g. "ja-ta-ja+GG".
func FormatGanas(pattern string) string {
	names, remainder := DeriveGanas(pattern)
	s := strings.Join(names, "-")
	if remainder != "" {
		if s == "" {
			return "+" + remainder
		}
		s += "+" + remainder
	}
	return s
}
