package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractClaimsEmptyInput(t *testing.T) {
	assert.Nil(t, ExtractClaims(""))
	assert.Nil(t, ExtractClaims("   "))
}

func TestExtractClaimsShortTextPassesThrough(t *testing.T) {
	claims := ExtractClaims("The Earth is round.")
	require.Len(t, claims, 1)
	assert.Equal(t, "The Earth is round.", claims[0])
}

func TestExtractClaimsConvertsQuestions(t *testing.T) {
	claims := ExtractClaims("Is the Earth round?")
	require.Len(t, claims, 1)
	assert.Equal(t, "The Earth round", claims[0])
}

func TestExtractClaimsSplitsSentences(t *testing.T) {
	text := "The Eiffel Tower is 330 meters tall. I really like it there. " +
		"It was completed in 1889 by Gustave Eiffel."
	claims := ExtractClaims(text)

	require.NotEmpty(t, claims)
	assert.Contains(t, claims, "The Eiffel Tower is 330 meters tall.")
	assert.Contains(t, claims, "It was completed in 1889 by Gustave Eiffel.")
}

func TestExtractClaimsFallsBackToWholeText(t *testing.T) {
	// No digits, no proper nouns past sentence start, no indicator words.
	text := "wandering somewhere quietly, thinking softly, dreaming gently, drifting onward through fog."
	claims := ExtractClaims(text)
	require.Len(t, claims, 1)
	assert.Equal(t, claims[0], ExtractClaims(text)[0])
}

func TestIsClaimHeuristics(t *testing.T) {
	assert.True(t, isClaim("It costs 42 dollars"), "digits mark factual content")
	assert.True(t, isClaim("Visiting Paris next month"), "proper nouns mark factual content")
	assert.True(t, isClaim("this proves the point"), "indicator verbs mark factual content")
}
