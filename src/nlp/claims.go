package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

// Text shorter than this is treated as a single claim without splitting.
const singleClaimLimit = 50

var questionStarters = []string{
	"is ", "are ", "was ", "were ", "will ", "do ", "does ", "did ",
	"can ", "could ", "should ", "would ", "has ", "have ", "had ",
}

var claimIndicators = []string{
	"is", "are", "was", "were", "will be",
	"has", "have", "had",
	"can", "could", "should", "would",
	"must", "may", "might",
	"because", "therefore", "thus", "hence",
	"proves", "shows", "demonstrates",
	"always", "never", "every", "all", "none",
}

var (
	digitRe    = regexp.MustCompile(`\d`)
	sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]?`)
)

// ExtractClaims pulls candidate factual claims out of free text. Questions
// are rewritten as statements first; short inputs pass through whole, and
// longer text is sentence-split with only claim-like sentences kept. The
// result is never empty for non-empty input.
func ExtractClaims(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	text = questionToStatement(text)

	if len(text) < singleClaimLimit {
		return []string{text}
	}

	var claims []string
	for _, sentence := range splitSentences(text) {
		if isClaim(sentence) {
			claims = append(claims, sentence)
		}
	}
	if len(claims) == 0 {
		claims = []string{text}
	}
	return claims
}

// questionToStatement drops the question mark and a leading auxiliary verb
// so "Is the wall visible?" becomes "The wall visible".
func questionToStatement(text string) string {
	text = strings.ReplaceAll(text, "?", "")

	lower := strings.ToLower(text)
	for _, starter := range questionStarters {
		if strings.HasPrefix(lower, starter) {
			text = strings.TrimSpace(text[len(starter):])
			if text != "" {
				runes := []rune(text)
				runes[0] = unicode.ToUpper(runes[0])
				text = string(runes)
			}
			break
		}
	}
	return text
}

func splitSentences(text string) []string {
	var out []string
	for _, m := range sentenceRe.FindAllString(text, -1) {
		if s := strings.TrimSpace(m); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// isClaim applies cheap heuristics for factual content: numbers, proper
// nouns past the sentence start, or stative/causal indicator words.
func isClaim(text string) bool {
	if digitRe.MatchString(text) {
		return true
	}
	if hasProperNoun(text) {
		return true
	}

	lower := strings.ToLower(text)
	for _, indicator := range claimIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// hasProperNoun reports whether any word after the first is capitalized,
// a rough stand-in for named-entity detection.
func hasProperNoun(text string) bool {
	words := strings.Fields(text)
	for i, w := range words {
		if i == 0 {
			continue
		}
		r := []rune(w)
		if len(r) > 1 && unicode.IsUpper(r[0]) && unicode.IsLower(r[1]) {
			return true
		}
	}
	return false
}
