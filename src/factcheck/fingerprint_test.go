package factcheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintStable(t *testing.T) {
	a := Fingerprint("The Earth is round.", "")
	b := Fingerprint("The Earth is round.", "")
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)
}

func TestFingerprintDistinguishesClaims(t *testing.T) {
	assert.NotEqual(t,
		Fingerprint("The Earth is round.", ""),
		Fingerprint("The Earth is flat.", ""))
}

func TestFingerprintIncludesContext(t *testing.T) {
	assert.NotEqual(t,
		Fingerprint("Same claim.", "context one"),
		Fingerprint("Same claim.", "context two"))
}

func TestFingerprintNormalizesWhitespace(t *testing.T) {
	assert.Equal(t,
		Fingerprint("  The Earth is round.  ", " ctx "),
		Fingerprint("The Earth is round.", "ctx"))
}

func TestCacheKeyPrefix(t *testing.T) {
	key := cacheKey("claim", "ctx")
	assert.True(t, strings.HasPrefix(key, "factcheck:"))
}
