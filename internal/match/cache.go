package match

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/comalice/scdiff/internal/compare"
)

// matchCache memoises MatchSet by canonical mapping serialisation for the
// lifetime of a single exhaustive comparison. It is sized to the number of
// candidates the exhaustive matcher is about to score and discarded when
// the comparison returns; it is never shared across comparisons.
type matchCache struct {
	g1, g2 *compare.Graph
	cache  *lru.Cache[string, []MatchedPair]
}

func newMatchCache(g1, g2 *compare.Graph, capacity int) *matchCache {
	if capacity < 1 {
		capacity = 1
	}
	c, _ := lru.New[string, []MatchedPair](capacity)
	return &matchCache{g1: g1, g2: g2, cache: c}
}

func (c *matchCache) score(m Mapping) int {
	return len(c.matches(m))
}

func (c *matchCache) matches(m Mapping) []MatchedPair {
	key := serialize(m)
	if cached, ok := c.cache.Get(key); ok {
		return cached
	}
	computed := MatchSet(c.g1, c.g2, m)
	c.cache.Add(key, computed)
	return computed
}
