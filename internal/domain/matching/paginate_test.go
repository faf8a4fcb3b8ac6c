package matching

import "testing"

func rankedFixture(n int) []MatchResult {
	out := make([]MatchResult, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, result(byte(i+1), 100-i, Recommend))
	}
	return out
}

func TestPaginate_FirstPage(t *testing.T) {
	p := Paginate(rankedFixture(5), 1, 2)
	if len(p.Data) != 2 {
		t.Fatalf("expected 2 items, got %d", len(p.Data))
	}
	if p.Pagination.Total != 5 {
		t.Fatalf("expected total 5, got %d", p.Pagination.Total)
	}
	if !p.Pagination.HasMore {
		t.Fatalf("expected has_more true")
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	p := Paginate(rankedFixture(5), 3, 2)
	if len(p.Data) != 1 {
		t.Fatalf("expected 1 item, got %d", len(p.Data))
	}
	if p.Pagination.HasMore {
		t.Fatalf("expected has_more false on the last page")
	}
}

func TestPaginate_PageBeyondEndIsEmptyNotError(t *testing.T) {
	p := Paginate(rankedFixture(10), 5, 20)
	if len(p.Data) != 0 {
		t.Fatalf("expected empty page, got %d items", len(p.Data))
	}
	if p.Pagination.Total != 10 {
		t.Fatalf("expected total 10, got %d", p.Pagination.Total)
	}
	if p.Pagination.HasMore {
		t.Fatalf("expected has_more false")
	}
}

// Concatenating all pages for a fixed limit must reproduce the ranked
// sequence exactly once, with no duplicates or omissions.
func TestPaginate_PagesPartitionTheSequence(t *testing.T) {
	ranked := rankedFixture(23)
	limit := 5

	var all []MatchResult
	for page := 1; ; page++ {
		p := Paginate(ranked, page, limit)
		all = append(all, p.Data...)
		if !p.Pagination.HasMore {
			break
		}
	}

	if len(all) != len(ranked) {
		t.Fatalf("expected %d items across pages, got %d", len(ranked), len(all))
	}
	for i := range ranked {
		if all[i].TalentID != ranked[i].TalentID {
			t.Fatalf("pages out of order at %d", i)
		}
	}
}

func TestPaginate_EmptyInput(t *testing.T) {
	p := Paginate(nil, 1, 20)
	if len(p.Data) != 0 || p.Pagination.Total != 0 || p.Pagination.HasMore {
		t.Fatalf("unexpected pagination for empty input: %+v", p.Pagination)
	}
}
