package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSentimentPositive(t *testing.T) {
	out := AnalyzeSentiment("This is a great and excellent result")

	assert.Equal(t, "positive", out.Sentiment)
	assert.InDelta(t, 0.7, out.Score, 1e-9)
	assert.Equal(t, 2, out.PositiveWords)
	assert.Equal(t, 0, out.NegativeWords)
}

func TestAnalyzeSentimentNegative(t *testing.T) {
	out := AnalyzeSentiment("a terrible, awful and wrong take")

	assert.Equal(t, "negative", out.Sentiment)
	assert.InDelta(t, 0.2, out.Score, 1e-9)
}

func TestAnalyzeSentimentNeutral(t *testing.T) {
	out := AnalyzeSentiment("the sky was overcast on tuesday")

	assert.Equal(t, "neutral", out.Sentiment)
	assert.Equal(t, 0.5, out.Score)
}

func TestAnalyzeSentimentScoreClamped(t *testing.T) {
	out := AnalyzeSentiment("good great excellent amazing wonderful best better positive")
	assert.Equal(t, 1.0, out.Score)
}
