package usecase

import (
	"strings"
	"testing"

	"cast-match/internal/domain/matching"
)

func TestTalentSearchCacheKey_OrderInsensitiveLists(t *testing.T) {
	a := matching.SearchQuery{Skills: []string{"dance", "singing"}, Page: 1, Limit: 20}
	b := matching.SearchQuery{Skills: []string{"singing", "dance"}, Page: 1, Limit: 20}

	if TalentSearchCacheKey(a) != TalentSearchCacheKey(b) {
		t.Fatalf("list order must not change the cache key")
	}
}

func TestTalentSearchCacheKey_PageIsPartOfTheKey(t *testing.T) {
	a := matching.SearchQuery{Skills: []string{"dance"}, Page: 1, Limit: 20}
	b := matching.SearchQuery{Skills: []string{"dance"}, Page: 2, Limit: 20}

	if TalentSearchCacheKey(a) == TalentSearchCacheKey(b) {
		t.Fatalf("different pages must not share a key")
	}
}

func TestTalentSearchCacheKey_Prefix(t *testing.T) {
	key := TalentSearchCacheKey(matching.SearchQuery{Page: 1, Limit: 20})
	if !strings.HasPrefix(key, "talent:search:") {
		t.Fatalf("unexpected key %q", key)
	}
}

func TestTalentSearchLockKey(t *testing.T) {
	key := TalentSearchCacheKey(matching.SearchQuery{Page: 1, Limit: 20})
	lock := TalentSearchLockKey(key)
	if !strings.HasPrefix(lock, "talent:lock:") {
		t.Fatalf("unexpected lock key %q", lock)
	}
	if strings.TrimPrefix(lock, "talent:lock:") != strings.TrimPrefix(key, "talent:search:") {
		t.Fatalf("lock key must reuse the search key hash")
	}
}
