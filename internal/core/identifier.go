// Package core wires the deterministic prosody pipeline, the meter catalog,
// the known-verse table, and the reconciliation engine into the single
// identification entry point.
package core

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shlokavani/chandas/internal/config"
	"github.com/shlokavani/chandas/internal/core/catalog"
	"github.com/shlokavani/chandas/internal/core/model"
	"github.com/shlokavani/chandas/internal/core/prosody"
	"github.com/shlokavani/chandas/internal/core/reconcile"
	"github.com/shlokavani/chandas/internal/llm"
)

// ContextProvider supplies reference material for prompt augmentation (the
// knowledge base, when one is configured). Failures are logged and ignored;
// identification never depends on it.
type ContextProvider interface {
	MeterContext(ctx context.Context, verseText string) (string, error)
}

// Identifier is the identification engine. The catalog and known-verse table
// are immutable and shared read-only across concurrent calls; per-call
// working data lives on the call stack.
type Identifier struct {
	Catalog *catalog.Catalog
	Known   *catalog.KnownVerses
	Engine  *reconcile.Engine
	Context ContextProvider // optional
	Log     *zap.SugaredLogger
}

// New builds an Identifier. client may be nil for pure algorithmic
// identification; provider may be nil when no knowledge base is configured.
func New(cat *catalog.Catalog, known *catalog.KnownVerses, client llm.ChatClient, prompts config.Prompts, provider ContextProvider, log *zap.SugaredLogger) *Identifier {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Identifier{
		Catalog: cat,
		Known:   known,
		Engine:  reconcile.NewEngine(cat, client, prompts, log),
		Context: provider,
		Log:     log,
	}
}

// Identify analyzes verseText and returns its identified meter. The
// deterministic path always runs; the LLM collaborator, when configured, is
// consulted through the reconciliation engine with at most two round trips.
func (id *Identifier) Identify(ctx context.Context, verseText string) (*model.IdentificationResult, error) {
	verse, err := prosody.Analyze(verseText)
	if err != nil {
		return nil, err
	}

	algo := id.algorithmicResult(verse)

	normalized := normalizedText(verse)
	var known *model.KnownVerseEntry
	if entry, ok := id.Known.Match(normalized); ok {
		known = &entry
	}

	kbContext := ""
	if id.Context != nil {
		kbContext, err = id.Context.MeterContext(ctx, normalized)
		if err != nil {
			id.Log.Warnw("context provider failed; continuing without reference material", "error", err)
			kbContext = ""
		}
	}

	result := id.Engine.Reconcile(ctx, verseText, algo, known, kbContext)
	return &result, nil
}

// algorithmicResult assembles the deterministic identification for a
// segmented verse.
func (id *Identifier) algorithmicResult(verse model.Verse) model.IdentificationResult {
	match := id.Catalog.Match(verse)
	pattern := verse.Pattern()
	counts := verse.SyllableCounts()

	steps := []string{
		fmt.Sprintf("normalized verse into %d padas", len(verse.Padas)),
		fmt.Sprintf("segmented %d syllables %v", len(pattern), counts),
		fmt.Sprintf("weight pattern %s, ganas %s", pattern, prosody.GanaPattern(verse)),
	}
	steps = append(steps, match.Steps...)

	return model.IdentificationResult{
		ChandasName:          match.MeterName,
		SyllableBreakdown:    verse.AllSyllables(),
		LaghuGuruPattern:     pattern,
		GanaPattern:          prosody.GanaPattern(verse),
		SyllableCountPerPada: counts,
		Confidence:           match.Confidence,
		Explanation:          explain(verse, match),
		Process:              steps,
		IdentifiedBy:         model.ByAlgorithm,
		Warnings:             verse.Warnings,
	}
}

func explain(verse model.Verse, match catalog.MatchResult) string {
	counts := verse.SyllableCounts()
	switch {
	case match.Exact:
		return fmt.Sprintf("The verse's weight pattern matches the canonical form of %s exactly (%v syllables per pada).", match.MeterName, counts)
	case match.MeterName == catalog.MeterUnknown:
		return fmt.Sprintf("No catalogued meter has syllable counts %v; the verse may be irregular or a meter outside the catalog.", counts)
	default:
		return fmt.Sprintf("Identified as %s from syllable counts %v.", match.MeterName, counts)
	}
}

// normalizedText is the canonical single-line form the known-verse table is
// matched against.
func normalizedText(verse model.Verse) string {
	parts := make([]string, len(verse.Padas))
	for i, p := range verse.Padas {
		parts[i] = p.Text
	}
	return strings.Join(parts, " ")
}
