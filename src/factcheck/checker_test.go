package factcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGatherer struct {
	calls    int
	evidence []Evidence
}

func (f *fakeGatherer) Gather(ctx context.Context, claim string) []Evidence {
	f.calls++
	return f.evidence
}

type fakeJudge struct {
	calls    int
	judgment Judgment
	err      error
	panicMsg string
}

func (f *fakeJudge) Judge(ctx context.Context, claim string, evidence []Evidence) (Judgment, error) {
	f.calls++
	if f.panicMsg != "" {
		panic(f.panicMsg)
	}
	return f.judgment, f.err
}

type fakeCrossChecker struct {
	calls  int
	result CrossCheck
}

func (f *fakeCrossChecker) CrossCheck(ctx context.Context, claim, explanation string) CrossCheck {
	f.calls++
	return f.result
}

type memCache struct {
	store     map[string]*Result
	getCalls  int
	setCalls  int
	setFailed error
}

func newMemCache() *memCache {
	return &memCache{store: make(map[string]*Result)}
}

func (m *memCache) Get(ctx context.Context, key string) (*Result, bool) {
	m.getCalls++
	res, ok := m.store[key]
	return res, ok
}

func (m *memCache) Set(ctx context.Context, key string, res *Result, ttlSeconds int) error {
	m.setCalls++
	if m.setFailed != nil {
		return m.setFailed
	}
	m.store[key] = res
	return nil
}

func newTestChecker(g *fakeGatherer, j *fakeJudge, x *fakeCrossChecker, c ResultCache) *Checker {
	return NewChecker(g, j, x, c)
}

func TestVerifyRejectsShortClaim(t *testing.T) {
	gatherer := &fakeGatherer{}
	judge := &fakeJudge{}
	crosser := &fakeCrossChecker{}

	checker := newTestChecker(gatherer, judge, crosser, newMemCache())

	for _, claim := range []string{"", "  ", "ab", " a "} {
		res := checker.Verify(context.Background(), claim, "")
		require.NotNil(t, res)
		assert.Equal(t, 50.0, res.Score)
		assert.Equal(t, VerdictNeutral, res.Verdict)
		assert.Equal(t, "Claim too short or empty", res.Explanation)
		assert.Empty(t, res.Evidence)
		assert.Empty(t, res.Sources)
	}

	assert.Zero(t, gatherer.calls, "short claims must not trigger evidence gathering")
	assert.Zero(t, judge.calls, "short claims must not trigger judging")
	assert.Zero(t, crosser.calls, "short claims must not trigger cross-checking")
}

func TestVerifyServesSecondCallFromCache(t *testing.T) {
	gatherer := &fakeGatherer{evidence: []Evidence{
		{Title: "A", Link: "https://a.example", Snippet: "snippet a", Source: "web_search"},
	}}
	judge := &fakeJudge{judgment: Judgment{Score: 80, Verdict: VerdictTrue, Explanation: "well supported"}}
	crosser := &fakeCrossChecker{result: CrossCheck{Explanation: "OpenAI API key not set"}}
	cache := newMemCache()

	checker := newTestChecker(gatherer, judge, crosser, cache)

	first := checker.Verify(context.Background(), "The Earth orbits the Sun.", "")
	second := checker.Verify(context.Background(), "The Earth orbits the Sun.", "")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, gatherer.calls)
	assert.Equal(t, 1, judge.calls)
	assert.Equal(t, 1, crosser.calls)
	assert.Equal(t, 1, cache.setCalls)
}

func TestVerifyContextChangesCacheKey(t *testing.T) {
	gatherer := &fakeGatherer{}
	judge := &fakeJudge{judgment: Judgment{Score: 70, Verdict: VerdictTrue, Explanation: "fine"}}
	crosser := &fakeCrossChecker{}
	cache := newMemCache()

	checker := newTestChecker(gatherer, judge, crosser, cache)

	checker.Verify(context.Background(), "Same claim text here.", "first context")
	checker.Verify(context.Background(), "Same claim text here.", "second context")

	assert.Equal(t, 2, judge.calls, "different context must compute separately")
}

func TestVerifyJudgeFailureKeepsEvidence(t *testing.T) {
	gatherer := &fakeGatherer{evidence: []Evidence{
		{Title: "NASA", Link: "https://nasa.gov/wall", Snippet: "not visible", Source: "web_search"},
		{Title: "Other", Link: "https://example.org/a", Snippet: "more", Source: "web_search"},
	}}
	judge := &fakeJudge{err: ErrJudgeUnavailable}
	crosser := &fakeCrossChecker{result: CrossCheck{Explanation: "OpenAI API key not set"}}

	checker := newTestChecker(gatherer, judge, crosser, newMemCache())

	res := checker.Verify(context.Background(), "The Great Wall is visible from space.", "")

	assert.Equal(t, 50.0, res.Score)
	assert.Equal(t, VerdictNeutral, res.Verdict)
	assert.Contains(t, res.Explanation, "Error in AI analysis")
	assert.Len(t, res.Evidence, 2)
	assert.Equal(t, []string{"https://nasa.gov/wall", "https://example.org/a"}, res.Sources)
	assert.Equal(t, 1, crosser.calls, "pipeline continues past a failed judge")
}

func TestVerifySecondaryAbsenceLeavesPrimaryUntouched(t *testing.T) {
	judge := &fakeJudge{judgment: Judgment{Score: 92, Verdict: VerdictTrue, Explanation: "confirmed"}}
	crosser := &fakeCrossChecker{result: CrossCheck{Explanation: "OpenAI API key not set"}}

	checker := newTestChecker(&fakeGatherer{}, judge, crosser, newMemCache())

	res := checker.Verify(context.Background(), "Water boils at 100C at sea level.", "")

	assert.Nil(t, res.SecondaryScore)
	assert.Equal(t, "OpenAI API key not set", res.SecondaryDetail)
	assert.Equal(t, 92.0, res.Score)
	assert.Equal(t, VerdictTrue, res.Verdict)
}

func TestVerifySecondaryNeverOverridesPrimary(t *testing.T) {
	second := 10.0
	judge := &fakeJudge{judgment: Judgment{Score: 95, Verdict: VerdictTrue, Explanation: "solid"}}
	crosser := &fakeCrossChecker{result: CrossCheck{Score: &second, Explanation: "disagrees"}}

	checker := newTestChecker(&fakeGatherer{}, judge, crosser, newMemCache())

	res := checker.Verify(context.Background(), "Mount Everest is the tallest mountain.", "")

	assert.Equal(t, 95.0, res.Score)
	assert.Equal(t, VerdictTrue, res.Verdict)
	require.NotNil(t, res.SecondaryScore)
	assert.Equal(t, 10.0, *res.SecondaryScore)
	assert.Equal(t, "disagrees", res.SecondaryDetail)
}

func TestVerifyCacheWriteFailureIsSwallowed(t *testing.T) {
	judge := &fakeJudge{judgment: Judgment{Score: 60, Verdict: VerdictPartial, Explanation: "mixed"}}
	cache := newMemCache()
	cache.setFailed = errors.New("redis down")

	checker := newTestChecker(&fakeGatherer{}, judge, &fakeCrossChecker{}, cache)

	res := checker.Verify(context.Background(), "Some moderately long claim text.", "")

	require.NotNil(t, res)
	assert.Equal(t, VerdictPartial, res.Verdict)
	assert.Equal(t, 1, cache.setCalls)
}

func TestVerifyRecoversFromPanic(t *testing.T) {
	judge := &fakeJudge{panicMsg: "boom"}

	checker := newTestChecker(&fakeGatherer{}, judge, &fakeCrossChecker{}, newMemCache())

	res := checker.Verify(context.Background(), "A claim that trips an unexpected bug.", "")

	require.NotNil(t, res)
	assert.Equal(t, VerdictError, res.Verdict)
	assert.Equal(t, 50.0, res.Score)
	assert.Contains(t, res.Explanation, "boom")
}

func TestVerifyEndToEndGreatWall(t *testing.T) {
	gatherer := &fakeGatherer{evidence: []Evidence{
		{
			Title:   "NASA - China's Wall Less Great in View from Space",
			Link:    "https://www.nasa.gov/vision/space/workinginspace/great_wall.html",
			Snippet: "The Great Wall of China is not visible from space with the naked eye.",
			Source:  "web_search",
		},
	}}
	judge := &fakeJudge{judgment: Judgment{Score: 5, Verdict: VerdictFalse, Explanation: "NASA confirms it is not visible"}}
	second := 8.0
	crosser := &fakeCrossChecker{result: CrossCheck{Score: &second, Explanation: "explanation refutes the claim"}}

	checker := newTestChecker(gatherer, judge, crosser, newMemCache())

	res := checker.Verify(context.Background(),
		"The Great Wall of China is visible from space with the naked eye.", "")

	assert.Equal(t, VerdictFalse, res.Verdict)
	assert.Equal(t, 5.0, res.Score)
	assert.Contains(t, res.Sources, "https://www.nasa.gov/vision/space/workinginspace/great_wall.html")
	require.NotNil(t, res.SecondaryScore)
	assert.Equal(t, 8.0, *res.SecondaryScore)
}
