package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shlokavani/chandas/internal/config"
	"github.com/shlokavani/chandas/internal/core/catalog"
	"github.com/shlokavani/chandas/internal/core/model"
	"github.com/shlokavani/chandas/internal/llm"
)

// MockLLM replays a queue of canned replies and records every call, so tests
// can assert on the two-call bound and on the re-prompt transcript.
type MockLLM struct {
	Queue         []string
	Err           error
	CompleteCalls int
	ChatCalls     int
	LastChat      []llm.Message
}

func (m *MockLLM) next() (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Queue) == 0 {
		return "", errors.New("mock llm: queue exhausted")
	}
	reply := m.Queue[0]
	m.Queue = m.Queue[1:]
	return reply, nil
}

func (m *MockLLM) Complete(ctx context.Context, system, user string) (string, error) {
	m.CompleteCalls++
	return m.next()
}

func (m *MockLLM) Chat(ctx context.Context, messages []llm.Message) (string, error) {
	m.ChatCalls++
	m.LastChat = messages
	return m.next()
}

func testPrompts() config.Prompts {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	return cfg.Prompts
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return cat
}

func algorithmicFixture() model.IdentificationResult {
	return model.IdentificationResult{
		ChandasName:          "Anushtubh",
		LaghuGuruPattern:     "LGLGLGGLLGLGLGGLGLGGLGGLLGLGLGGL",
		GanaPattern:          "ja-ra-sa / ja-ra-sa / ja-ra-sa / ja-ra-sa",
		SyllableCountPerPada: []int{8, 8, 8, 8},
		Confidence:           0.85,
		Explanation:          "Unique syllable-count match.",
		IdentifiedBy:         model.ByAlgorithm,
		Process:              []string{"segmented 32 syllables"},
	}
}

func llmReply(name string, counts []int, confidence float64) string {
	payload := map[string]any{
		"chandas_name":            name,
		"laghu_guru_pattern":      "",
		"gana_pattern":            "",
		"syllable_count_per_pada": counts,
		"confidence":              confidence,
		"explanation":             fmt.Sprintf("The verse is in %s.", name),
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

func TestReconcile_NilClientKeepsAlgorithmicResult(t *testing.T) {
	e := NewEngine(testCatalog(t), nil, testPrompts(), nil)

	res := e.Reconcile(context.Background(), "some verse", algorithmicFixture(), nil, "")
	assert.Equal(t, "Anushtubh", res.ChandasName)
	assert.Equal(t, 0.85, res.Confidence)
	assert.Equal(t, model.ByAlgorithm, res.IdentifiedBy)
}

func TestReconcile_NilClientWithKnownVerse(t *testing.T) {
	e := NewEngine(testCatalog(t), nil, testPrompts(), nil)
	known := &model.KnownVerseEntry{OpeningText: "यदा यदा हि धर्मस्य", MeterName: "Trishtubh"}

	res := e.Reconcile(context.Background(), "यदा यदा हि धर्मस्य", algorithmicFixture(), known, "")
	assert.Equal(t, "Trishtubh", res.ChandasName)
	assert.Equal(t, 0.9, res.Confidence)
	assert.Equal(t, model.ByKnownVerse, res.IdentifiedBy)
	assert.Contains(t, res.Explanation, "canonical verse")
}

func TestReconcile_ConsistentLLMResultAccepted(t *testing.T) {
	mock := &MockLLM{Queue: []string{llmReply("Anushtubh", []int{8, 8, 8, 8}, 0.7)}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)

	res := e.Reconcile(context.Background(), "some verse", algorithmicFixture(), nil, "")
	assert.Equal(t, "Anushtubh", res.ChandasName)
	assert.Equal(t, 0.7, res.Confidence)
	assert.Equal(t, model.ByLLM, res.IdentifiedBy)
	assert.Equal(t, 1, mock.CompleteCalls)
	assert.Equal(t, 0, mock.ChatCalls)

	// Structural fields the LLM left blank come from the algorithmic result.
	assert.Equal(t, algorithmicFixture().LaghuGuruPattern, res.LaghuGuruPattern)
	assert.Equal(t, algorithmicFixture().GanaPattern, res.GanaPattern)
}

func TestReconcile_CountMismatchTriggersOneReprompt(t *testing.T) {
	mock := &MockLLM{Queue: []string{
		llmReply("Trishtubh", []int{8, 8, 8, 8}, 0.6),
		llmReply("Anushtubh", []int{8, 8, 8, 8}, 0.85),
	}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)

	res := e.Reconcile(context.Background(), "some verse", algorithmicFixture(), nil, "")
	assert.Equal(t, "Anushtubh", res.ChandasName)
	assert.Equal(t, model.ByLLMReverified, res.IdentifiedBy)
	assert.Equal(t, 1, mock.CompleteCalls)
	assert.Equal(t, 1, mock.ChatCalls)

	// The retry transcript is the original exchange plus assistant turn and
	// correction, in order.
	require.Len(t, mock.LastChat, 4)
	assert.Equal(t, llm.RoleSystem, mock.LastChat[0].Role)
	assert.Equal(t, llm.RoleUser, mock.LastChat[1].Role)
	assert.Equal(t, llm.RoleAssistant, mock.LastChat[2].Role)
	assert.Equal(t, llm.RoleUser, mock.LastChat[3].Role)
	assert.Contains(t, mock.LastChat[3].Content, "inconsistent")
}

func TestReconcile_RepromptHintsTrishtubhForElevenSyllables(t *testing.T) {
	mock := &MockLLM{Queue: []string{
		llmReply("Anushtubh", []int{11, 11, 11, 11}, 0.6),
		llmReply("Trishtubh", []int{11, 11, 11, 11}, 0.9),
	}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)

	res := e.Reconcile(context.Background(), "some verse", algorithmicFixture(), nil, "")
	assert.Equal(t, "Trishtubh", res.ChandasName)
	require.Len(t, mock.LastChat, 4)
	assert.Contains(t, mock.LastChat[3].Content, "Trishtubh")
}

func TestReconcile_RepromptHintsJagatiForTwelveSyllables(t *testing.T) {
	mock := &MockLLM{Queue: []string{
		llmReply("Anushtubh", []int{12, 12, 12, 12}, 0.6),
		llmReply("Jagati", []int{12, 12, 12, 12}, 0.9),
	}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)

	e.Reconcile(context.Background(), "some verse", algorithmicFixture(), nil, "")
	require.Len(t, mock.LastChat, 4)
	assert.Contains(t, mock.LastChat[3].Content, "Jagati")
}

func TestReconcile_RepromptedResultAcceptedUnconditionally(t *testing.T) {
	// The second answer is still inconsistent; it is accepted anyway and no
	// third call is made.
	mock := &MockLLM{Queue: []string{
		llmReply("Trishtubh", []int{8, 8, 8, 8}, 0.6),
		llmReply("Gayatri", []int{8, 8, 8, 8}, 0.6),
	}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)

	res := e.Reconcile(context.Background(), "some verse", algorithmicFixture(), nil, "")
	assert.Equal(t, "Gayatri", res.ChandasName)
	assert.Equal(t, model.ByLLMReverified, res.IdentifiedBy)
	assert.Equal(t, 2, mock.CompleteCalls+mock.ChatCalls)
}

func TestReconcile_MalformedRepromptKeepsFirstResult(t *testing.T) {
	mock := &MockLLM{Queue: []string{
		llmReply("Trishtubh", []int{8, 8, 8, 8}, 0.6),
		"sorry, I cannot produce JSON",
	}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)

	res := e.Reconcile(context.Background(), "some verse", algorithmicFixture(), nil, "")
	assert.Equal(t, "Trishtubh", res.ChandasName)
	assert.Equal(t, model.ByLLM, res.IdentifiedBy)
	assert.Equal(t, 2, mock.CompleteCalls+mock.ChatCalls)
}

func TestReconcile_MalformedFirstReplyFallsBack(t *testing.T) {
	mock := &MockLLM{Queue: []string{"not json at all"}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)

	res := e.Reconcile(context.Background(), "some verse", algorithmicFixture(), nil, "")
	assert.Equal(t, "Anushtubh", res.ChandasName)
	assert.Equal(t, model.ByAlgorithm, res.IdentifiedBy)
	assert.Equal(t, 1, mock.CompleteCalls+mock.ChatCalls)
}

func TestReconcile_TransportErrorFallsBack(t *testing.T) {
	mock := &MockLLM{Err: errors.New("connection refused")}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)

	res := e.Reconcile(context.Background(), "some verse", algorithmicFixture(), nil, "")
	assert.Equal(t, model.ByAlgorithm, res.IdentifiedBy)
	assert.Equal(t, 0.85, res.Confidence)
}

func TestReconcile_OutOfRangeConfidenceIsMalformed(t *testing.T) {
	mock := &MockLLM{Queue: []string{llmReply("Anushtubh", []int{8, 8, 8, 8}, 1.7)}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)

	res := e.Reconcile(context.Background(), "some verse", algorithmicFixture(), nil, "")
	assert.Equal(t, model.ByAlgorithm, res.IdentifiedBy)
}

func TestReconcile_KnownVerseAgreementRaisesConfidence(t *testing.T) {
	mock := &MockLLM{Queue: []string{llmReply("Anushtubh", []int{8, 8, 8, 8}, 0.8)}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)
	known := &model.KnownVerseEntry{OpeningText: "धर्मक्षेत्रे कुरुक्षेत्रे", MeterName: "Anushtubh"}

	res := e.Reconcile(context.Background(), "धर्मक्षेत्रे कुरुक्षेत्रे ...", algorithmicFixture(), known, "")
	assert.Equal(t, "Anushtubh", res.ChandasName)
	assert.InDelta(t, 0.9, res.Confidence, 1e-9)
	assert.Equal(t, model.ByBoth, res.IdentifiedBy)
}

func TestReconcile_KnownVerseAgreementConfidenceCappedAtOne(t *testing.T) {
	mock := &MockLLM{Queue: []string{llmReply("Anushtubh", []int{8, 8, 8, 8}, 0.95)}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)
	known := &model.KnownVerseEntry{OpeningText: "धर्मक्षेत्रे कुरुक्षेत्रे", MeterName: "Anushtubh"}

	res := e.Reconcile(context.Background(), "धर्मक्षेत्रे कुरुक्षेत्रे ...", algorithmicFixture(), known, "")
	assert.Equal(t, 1.0, res.Confidence)
}

func TestReconcile_KnownVerseOverridesDisagreeingLLM(t *testing.T) {
	mock := &MockLLM{Queue: []string{llmReply("Gayatri", []int{8, 8, 8}, 0.8)}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)
	known := &model.KnownVerseEntry{OpeningText: "धर्मक्षेत्रे कुरुक्षेत्रे", MeterName: "Anushtubh"}

	res := e.Reconcile(context.Background(), "धर्मक्षेत्रे कुरुक्षेत्रे ...", algorithmicFixture(), known, "")
	assert.Equal(t, "Anushtubh", res.ChandasName)
	assert.Equal(t, 0.9, res.Confidence)
	assert.Equal(t, model.ByKnownVerseOverride, res.IdentifiedBy)
	assert.Contains(t, res.Explanation, "canonical verse")
}

func TestReconcile_AtMostTwoLLMCalls(t *testing.T) {
	// Every reply is inconsistent with the catalog; the engine still stops
	// after the single corrective re-prompt.
	mock := &MockLLM{Queue: []string{
		llmReply("Trishtubh", []int{8, 8, 8, 8}, 0.6),
		llmReply("Trishtubh", []int{8, 8, 8, 8}, 0.6),
		llmReply("Trishtubh", []int{8, 8, 8, 8}, 0.6),
	}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)

	e.Reconcile(context.Background(), "some verse", algorithmicFixture(), nil, "")
	assert.Equal(t, 2, mock.CompleteCalls+mock.ChatCalls)
	assert.Len(t, mock.Queue, 1)
}

func TestReconcile_WarningsCarriedFromAlgorithmicResult(t *testing.T) {
	algo := algorithmicFixture()
	algo.Warnings = []string{"pada 2: skipped unrecognized character \"x\""}
	mock := &MockLLM{Queue: []string{llmReply("Anushtubh", []int{8, 8, 8, 8}, 0.7)}}
	e := NewEngine(testCatalog(t), mock, testPrompts(), nil)

	res := e.Reconcile(context.Background(), "some verse", algo, nil, "")
	assert.Equal(t, algo.Warnings, res.Warnings)
}

func TestBuildUserPrompt_IncludesKBContext(t *testing.T) {
	prompt := buildUserPrompt("यदा यदा हि धर्मस्य", "### Known shlokas\n- example")
	assert.Contains(t, prompt, "यदा यदा हि धर्मस्य")
	assert.Contains(t, prompt, "Relevant reference material:")
	assert.Contains(t, prompt, "ONLY valid JSON")

	bare := buildUserPrompt("यदा यदा हि धर्मस्य", "")
	assert.NotContains(t, bare, "Relevant reference material:")
}
