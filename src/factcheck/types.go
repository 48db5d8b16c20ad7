package factcheck

import "context"

// Verdict is the pipeline's conclusion about a claim.
type Verdict string

const (
	VerdictTrue    Verdict = "true"
	VerdictFalse   Verdict = "false"
	VerdictPartial Verdict = "partial"
	VerdictNeutral Verdict = "neutral"
	VerdictError   Verdict = "error"
)

// Evidence is a single web-search result used as grounding context.
type Evidence struct {
	Title   string `json:"title,omitempty"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
	Source  string `json:"source"`
}

// Judgment is the primary judge's assessment of a claim.
type Judgment struct {
	Score       float64
	Verdict     Verdict
	Explanation string
}

// CrossCheck is the secondary judge's independent assessment. A nil Score
// means no second opinion was available, which is distinct from an
// uncertain score of 50.
type CrossCheck struct {
	Score       *float64
	Explanation string
}

// Result is the unit cached and persisted for a verified claim.
type Result struct {
	Text            string     `json:"text"`
	Score           float64    `json:"score"`
	Verdict         Verdict    `json:"verdict"`
	Explanation     string     `json:"explanation"`
	Evidence        []Evidence `json:"evidence"`
	Sources         []string   `json:"sources"`
	SecondaryScore  *float64   `json:"secondary_score,omitempty"`
	SecondaryDetail string     `json:"secondary_explanation,omitempty"`
}

// EvidenceGatherer returns web evidence for a claim. Implementations never
// fail: evidence absence degrades judging, it does not abort it.
type EvidenceGatherer interface {
	Gather(ctx context.Context, claim string) []Evidence
}

// Judge scores a claim against gathered evidence. It returns
// ErrJudgeUnavailable (possibly wrapped) when the model is not configured
// or the call itself fails; the orchestrator substitutes the neutral
// default in that case.
type Judge interface {
	Judge(ctx context.Context, claim string, evidence []Evidence) (Judgment, error)
}

// CrossChecker asks an independent model to score the primary explanation
// against the claim. It never fails: missing configuration or a bad
// response yields a CrossCheck with a nil score.
type CrossChecker interface {
	CrossCheck(ctx context.Context, claim, primaryExplanation string) CrossCheck
}

// ResultCache stores computed results under their claim fingerprint.
type ResultCache interface {
	Get(ctx context.Context, key string) (*Result, bool)
	Set(ctx context.Context, key string, res *Result, ttlSeconds int) error
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
