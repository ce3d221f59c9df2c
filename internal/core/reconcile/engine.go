// Package reconcile merges the deterministic identification with the
// known-verse table and an LLM collaborator's opinion, including the single
// bounded self-verification re-prompt. The collaborator is invoked at most
// twice per verse; every failure on that boundary downgrades to the
// algorithmic result and is logged, never raised.
package reconcile

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shlokavani/chandas/internal/config"
	"github.com/shlokavani/chandas/internal/core/catalog"
	"github.com/shlokavani/chandas/internal/core/model"
	"github.com/shlokavani/chandas/internal/llm"
)

type Engine struct {
	Catalog *catalog.Catalog
	Client  llm.ChatClient // nil forces the pure algorithmic path
	Prompts config.Prompts
	Log     *zap.SugaredLogger
}

func NewEngine(cat *catalog.Catalog, client llm.ChatClient, prompts config.Prompts, log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{
		Catalog: cat,
		Client:  client,
		Prompts: prompts,
		Log:     log,
	}
}

// Reconcile produces the final identification from the algorithmic result,
// the optional known-verse hit, and (when a collaborator is configured) the
// LLM's identification. It builds a new result; its inputs are never mutated.
func (e *Engine) Reconcile(ctx context.Context, verseText string, algo model.IdentificationResult, known *model.KnownVerseEntry, kbContext string) model.IdentificationResult {
	steps := append([]string(nil), algo.Process...)

	if e.Client == nil {
		steps = append(steps, "no llm collaborator configured; deterministic result stands")
		return e.withoutLLM(algo, known, steps)
	}

	userPrompt := buildUserPrompt(verseText, kbContext)
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: e.Prompts.ChandasSystem},
		{Role: llm.RoleUser, Content: userPrompt},
	}

	raw, err := e.Client.Complete(ctx, e.Prompts.ChandasSystem, userPrompt)
	if err != nil {
		e.Log.Warnw("llm identification failed, falling back to algorithmic result", "error", err)
		steps = append(steps, fmt.Sprintf("llm call failed (%v); falling back to algorithmic result", err))
		return e.withoutLLM(algo, known, steps)
	}

	outcome := parseReply(raw)
	if !outcome.OK {
		e.Log.Warnw("llm reply did not decode, falling back to algorithmic result", "raw_len", len(outcome.Raw))
		steps = append(steps, "llm reply was malformed; falling back to algorithmic result")
		return e.withoutLLM(algo, known, steps)
	}

	result := fillFromAlgorithmic(outcome.Result, algo)
	identifiedBy := model.ByLLM
	steps = append(steps, fmt.Sprintf("llm identified %s (confidence %.2f)", result.ChandasName, result.Confidence))

	// Bounded self-verification: if the named meter's canonical counts
	// contradict the counts the LLM itself reported, issue exactly one
	// corrective re-prompt and accept its answer unconditionally.
	if mismatch := e.countMismatch(outcome.Result); mismatch != "" {
		steps = append(steps, "count mismatch: "+mismatch+"; issuing one corrective re-prompt")

		// The message log is append-only: the retry gets a fresh slice with
		// the assistant turn and the correction appended.
		retry := append(append([]llm.Message(nil), messages...),
			llm.Message{Role: llm.RoleAssistant, Content: raw},
			llm.Message{Role: llm.RoleUser, Content: e.reverifyPrompt(mismatch, outcome.Result.SyllableCountPerPada)},
		)

		raw2, err2 := e.Client.Chat(ctx, retry)
		if err2 != nil {
			e.Log.Warnw("re-prompt failed, keeping first llm result", "error", err2)
			steps = append(steps, "re-prompt failed; keeping first llm result")
		} else if out2 := parseReply(raw2); out2.OK {
			result = fillFromAlgorithmic(out2.Result, algo)
			identifiedBy = model.ByLLMReverified
			steps = append(steps, fmt.Sprintf("accepted reverified result: %s (confidence %.2f)", result.ChandasName, result.Confidence))
		} else {
			e.Log.Warnw("re-prompt reply did not decode, keeping first llm result")
			steps = append(steps, "re-prompt reply was malformed; keeping first llm result")
		}
	}

	return e.mergeKnown(result, known, identifiedBy, steps)
}

// withoutLLM finalizes the algorithmic result, applying the known-verse
// override when the table matched.
func (e *Engine) withoutLLM(algo model.IdentificationResult, known *model.KnownVerseEntry, steps []string) model.IdentificationResult {
	result := algo
	result.IdentifiedBy = model.ByAlgorithm
	if known != nil {
		steps = append(steps, fmt.Sprintf("known-verse table names this verse %s", known.MeterName))
		result.ChandasName = known.MeterName
		result.Confidence = 0.9
		result.Explanation = knownVerseNote(known) + result.Explanation
		result.IdentifiedBy = model.ByKnownVerse
	}
	result.Process = steps
	return result
}

// mergeKnown applies the known-verse rules to the (possibly reverified) LLM
// result: agreement raises confidence, disagreement overrides the name.
func (e *Engine) mergeKnown(result model.IdentificationResult, known *model.KnownVerseEntry, identifiedBy string, steps []string) model.IdentificationResult {
	switch {
	case known == nil:
		result.IdentifiedBy = identifiedBy

	case catalog.NormalizeName(result.ChandasName) == catalog.NormalizeName(known.MeterName):
		result.Confidence += 0.1
		if result.Confidence > 1.0 {
			result.Confidence = 1.0
		}
		result.IdentifiedBy = model.ByBoth
		steps = append(steps, fmt.Sprintf("known-verse table agrees (%s); confidence raised to %.2f", known.MeterName, result.Confidence))

	default:
		steps = append(steps, fmt.Sprintf("known-verse table overrides %s with %s", result.ChandasName, known.MeterName))
		result.ChandasName = known.MeterName
		result.Confidence = 0.9
		result.Explanation = knownVerseNote(known) + result.Explanation
		result.IdentifiedBy = model.ByKnownVerseOverride
	}
	result.Process = steps
	return result
}

// countMismatch checks the LLM's named meter against the counts the LLM
// itself reported. Empty when consistent, unverifiable, or the meter is not
// in the catalog.
func (e *Engine) countMismatch(llmResult model.IdentificationResult) string {
	if len(llmResult.SyllableCountPerPada) == 0 {
		return ""
	}
	def, ok := e.Catalog.Lookup(llmResult.ChandasName)
	if !ok {
		return ""
	}
	if equalCounts(def.SyllablesPerPada, llmResult.SyllableCountPerPada) {
		return ""
	}
	return fmt.Sprintf("%s has %v syllables per pada, but the reported counts are %v",
		def.Name, def.SyllablesPerPada, llmResult.SyllableCountPerPada)
}

// reverifyPrompt renders the corrective follow-up, hinting toward Trishtubh
// or Jagati when the reported counts are uniformly 11 or 12.
func (e *Engine) reverifyPrompt(mismatch string, counts []int) string {
	hint := ""
	switch {
	case uniform(counts, 11):
		hint = "Eleven syllables per pada suggests Trishtubh. "
	case uniform(counts, 12):
		hint = "Twelve syllables per pada suggests Jagati. "
	}
	return fmt.Sprintf(e.Prompts.Reverify, mismatch, hint)
}

// fillFromAlgorithmic copies structural fields the LLM left empty from the
// deterministic result, so the outward shape is always complete.
func fillFromAlgorithmic(llmResult, algo model.IdentificationResult) model.IdentificationResult {
	result := llmResult
	if len(result.SyllableBreakdown) == 0 {
		result.SyllableBreakdown = algo.SyllableBreakdown
	}
	if result.LaghuGuruPattern == "" {
		result.LaghuGuruPattern = algo.LaghuGuruPattern
	}
	if result.GanaPattern == "" {
		result.GanaPattern = algo.GanaPattern
	}
	if len(result.SyllableCountPerPada) == 0 {
		result.SyllableCountPerPada = algo.SyllableCountPerPada
	}
	if result.Explanation == "" {
		result.Explanation = algo.Explanation
	}
	result.Warnings = algo.Warnings
	return result
}

func buildUserPrompt(verseText, kbContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this Sanskrit verse and identify its meter:\n\n%s\n\n", verseText)
	if kbContext != "" {
		fmt.Fprintf(&b, "Relevant reference material:\n%s\n\n", kbContext)
	}
	b.WriteString("Return ONLY valid JSON with the required fields.")
	return b.String()
}

func knownVerseNote(known *model.KnownVerseEntry) string {
	return fmt.Sprintf("This opening matches a canonical verse catalogued as %s. ", known.MeterName)
}

func uniform(counts []int, n int) bool {
	if len(counts) == 0 {
		return false
	}
	for _, c := range counts {
		if c != n {
			return false
		}
	}
	return true
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
