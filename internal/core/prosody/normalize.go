package prosody

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/shlokavani/chandas/internal/core/model"
)

// markdownArtifacts are characters LLM-sourced or copy-pasted verses tend to
// carry that have no prosodic meaning.
var markdownArtifacts = strings.NewReplacer("`", "", "*", "", "#", "", "_", " ")

// Normalize canonicalizes raw verse text into pada strings: NFC composition,
// markdown stripping, danda removal, splitting on line breaks and danda
// boundaries, and whitespace collapsing. Returns ErrInvalidInput when nothing
// prosodic survives.
func Normalize(raw string) ([]string, error) {
	text := norm.NFC.String(raw)
	text = markdownArtifacts.Replace(text)

	// Dandas end a pada; double danda ends a verse. Both become split points.
	text = strings.ReplaceAll(text, string(runeDoubleDanda), "\n")
	text = strings.ReplaceAll(text, string(runeDanda), "\n")

	var padas []string
	for _, line := range strings.Split(text, "\n") {
		pada := strings.Join(strings.Fields(line), " ")
		pada = strings.Trim(pada, " ")
		if pada == "" {
			continue
		}
		padas = append(padas, pada)
	}

	if len(padas) == 0 {
		return nil, fmt.Errorf("%w: no padas after normalization", model.ErrInvalidInput)
	}
	return padas, nil
}
