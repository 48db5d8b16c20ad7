package factcheck

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

const minClaimLength = 3

// Checker drives the verification pipeline: cache lookup, evidence
// gathering, primary judging, secondary cross-check, reconciliation and
// write-through caching. Every step degrades on failure; Verify always
// returns a well-formed result.
type Checker struct {
	gatherer EvidenceGatherer
	judge    Judge
	crosser  CrossChecker
	cache    ResultCache
}

func NewChecker(gatherer EvidenceGatherer, judge Judge, crosser CrossChecker, cache ResultCache) *Checker {
	return &Checker{
		gatherer: gatherer,
		judge:    judge,
		crosser:  crosser,
		cache:    cache,
	}
}

// Verify assesses a single claim, optionally qualified by context text that
// participates in the cache fingerprint. Identical (claim, context) pairs
// within the TTL are served verbatim from cache without touching the
// network.
func (c *Checker) Verify(ctx context.Context, claim, claimContext string) (res *Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("verify claim: unexpected failure: %v", r)
			res = errorResult(claim, fmt.Sprintf("Error verifying claim: %v", r))
		}
	}()

	if len(strings.TrimSpace(claim)) < minClaimLength {
		return neutralResult(claim, "Claim too short or empty")
	}

	key := cacheKey(claim, claimContext)
	if cached, ok := c.cache.Get(ctx, key); ok {
		return cached
	}

	evidence := c.gatherer.Gather(ctx, claim)

	judgment, err := c.judge.Judge(ctx, claim, evidence)
	if err != nil {
		if !errors.Is(err, ErrJudgeUnavailable) {
			log.Printf("primary judge: %v", err)
		}
		judgment = Judgment{
			Score:       50.0,
			Verdict:     VerdictNeutral,
			Explanation: fmt.Sprintf("Error in AI analysis: %v", err),
		}
	}

	second := c.crosser.CrossCheck(ctx, claim, judgment.Explanation)

	sources := make([]string, 0, len(evidence))
	for _, e := range evidence {
		if e.Link != "" {
			sources = append(sources, e.Link)
		}
	}
	if evidence == nil {
		evidence = []Evidence{}
	}

	res = &Result{
		Text:            claim,
		Score:           judgment.Score,
		Verdict:         judgment.Verdict,
		Explanation:     judgment.Explanation,
		Evidence:        evidence,
		Sources:         sources,
		SecondaryScore:  second.Score,
		SecondaryDetail: second.Explanation,
	}

	if err := c.cache.Set(ctx, key, res, ResultTTLSeconds); err != nil {
		log.Printf("cache result: %v", err)
	}
	return res
}

func neutralResult(claim, explanation string) *Result {
	return &Result{
		Text:        claim,
		Score:       50.0,
		Verdict:     VerdictNeutral,
		Explanation: explanation,
		Evidence:    []Evidence{},
		Sources:     []string{},
	}
}

func errorResult(claim, explanation string) *Result {
	return &Result{
		Text:        claim,
		Score:       50.0,
		Verdict:     VerdictError,
		Explanation: explanation,
		Evidence:    []Evidence{},
		Sources:     []string{},
	}
}
