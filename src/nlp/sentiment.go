package nlp

import "strings"

// Sentiment is a coarse rule-based polarity reading of a text.
type Sentiment struct {
	Sentiment     string  `json:"sentiment"`
	Score         float64 `json:"score"`
	PositiveWords int     `json:"positive_words"`
	NegativeWords int     `json:"negative_words"`
}

var positiveWords = []string{
	"good", "great", "excellent", "amazing", "wonderful",
	"best", "better", "positive", "true", "correct",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "wrong", "false",
	"incorrect", "worst", "worse", "negative", "poor",
}

// AnalyzeSentiment counts polarity words and centers the score at 0.5,
// shifting it by 0.1 per unmatched polarity word, clamped to [0, 1].
func AnalyzeSentiment(text string) Sentiment {
	lower := strings.ToLower(text)

	positive := 0
	for _, w := range positiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	negative := 0
	for _, w := range negativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}

	out := Sentiment{
		Sentiment:     "neutral",
		Score:         0.5,
		PositiveWords: positive,
		NegativeWords: negative,
	}
	switch {
	case positive > negative:
		out.Sentiment = "positive"
		out.Score = 0.5 + float64(positive-negative)*0.1
		if out.Score > 1.0 {
			out.Score = 1.0
		}
	case negative > positive:
		out.Sentiment = "negative"
		out.Score = 0.5 - float64(negative-positive)*0.1
		if out.Score < 0.0 {
			out.Score = 0.0
		}
	}
	return out
}
