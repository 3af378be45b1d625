package services

import (
	"fmt"
	"testing"
)

// Every limit the invalidator forgets must be one the cache can write, and
// vice versa; both sides iterate catalogPageLimits so a storefront page can
// never go stale behind a limit the invalidator does not cover.
func TestCatalogCacheLimitsMatchInvalidation(t *testing.T) {
	for _, limit := range catalogPageLimits {
		if !catalogCacheable(limit) {
			t.Errorf("limit %d is invalidated but never cacheable", limit)
		}
		want := fmt.Sprintf("leadhub:catalog:first:%d", limit)
		if got := catalogCacheKey(limit); got != want {
			t.Errorf("catalogCacheKey(%d) = %q, want %q", limit, got, want)
		}
	}
}

func TestCatalogSkipsCacheForUnlistedLimits(t *testing.T) {
	for _, limit := range []int{1, 15, 37, 99} {
		if catalogCacheable(limit) {
			t.Errorf("limit %d would be cached with no matching invalidation key", limit)
		}
	}
}
