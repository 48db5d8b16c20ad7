package factcheck

import (
	"fmt"
	"strings"

	"github.com/OneOfOne/xxhash"
)

const cacheKeyPrefix = "factcheck:"

// Fingerprint derives the cache key for a (claim, context) pair: two seeded
// xxhash64 digests over the normalized concatenation, hex-concatenated into
// a 128-bit key. Stable across processes; different claims practically
// never collide.
func Fingerprint(claim, context string) string {
	data := []byte(strings.TrimSpace(claim) + strings.TrimSpace(context))

	hash1 := xxhash.NewS64(0)
	_, _ = hash1.Write(data)
	hash2 := xxhash.NewS64(1)
	_, _ = hash2.Write(data)

	return fmt.Sprintf("%016x%016x", hash1.Sum64(), hash2.Sum64())
}

func cacheKey(claim, context string) string {
	return cacheKeyPrefix + Fingerprint(claim, context)
}
