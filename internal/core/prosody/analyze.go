package prosody

import (
	"fmt"

	"github.com/shlokavani/chandas/internal/core/model"
)

// Analyze runs the deterministic text pipeline: normalization, per-pada
// segmentation, and weight classification. The returned Verse carries any
// non-fatal segmentation warnings; a pada that segments to zero syllables is
// an ErrInvalidInput, never silently defaulted.
func Analyze(raw string) (model.Verse, error) {
	padaTexts, err := Normalize(raw)
	if err != nil {
		return model.Verse{}, err
	}

	verse := model.Verse{Padas: make([]model.Pada, 0, len(padaTexts))}
	for i, text := range padaTexts {
		aksharas, warnings := SegmentPada(text)
		for _, w := range warnings {
			verse.Warnings = append(verse.Warnings, fmt.Sprintf("pada %d: %s", i+1, w))
		}
		if len(aksharas) == 0 {
			return model.Verse{}, fmt.Errorf("%w: pada %d (%q) contains no syllables", model.ErrInvalidInput, i+1, text)
		}
		verse.Padas = append(verse.Padas, model.Pada{
			Text:      text,
			Syllables: ClassifyPada(aksharas),
		})
	}
	return verse, nil
}

// GanaPattern renders the verse's gana sequence pada by pada.
func GanaPattern(v model.Verse) string {
	out := ""
	for i, p := range v.Padas {
		if i > 0 {
			out += " / "
		}
		out += FormatGanas(p.Pattern())
	}
	return out
}
