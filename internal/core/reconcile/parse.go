package reconcile

import (
	"github.com/shlokavani/chandas/internal/core/common"
	"github.com/shlokavani/chandas/internal/core/model"
)

// ParseOutcome is the tagged result of decoding an LLM reply: either a usable
// identification or the raw text that failed to decode. There is no partial
// acceptance; fallback to the algorithmic path is the engine's decision, not
// a side effect of string heuristics.
type ParseOutcome struct {
	Result model.IdentificationResult
	Raw    string
	OK     bool
}

// parseReply decodes an LLM reply against the identification schema, failing
// closed on missing name or out-of-range confidence.
func parseReply(raw string) ParseOutcome {
	res, err := common.ParseJSON[model.IdentificationResult](raw)
	if err != nil {
		return ParseOutcome{Raw: raw}
	}
	if res.ChandasName == "" || res.Confidence < 0 || res.Confidence > 1 {
		return ParseOutcome{Raw: raw}
	}
	return ParseOutcome{Result: res, Raw: raw, OK: true}
}
