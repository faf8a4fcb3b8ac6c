package matching

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(zap.NewNop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e.WithClock(func() time.Time { return testNow })
}

func searchPool() []Candidate {
	dancer := func(n byte, name string, rating float64) Candidate {
		c := testCandidate(n)
		c.Name = name
		c.Rating = rating
		return c
	}

	singer := testCandidate(4)
	singer.Name = "Pure Singer"
	singer.Skills = []string{"singing"}

	lowRated := dancer(5, "Low Rated Dancer", 3.0)

	return []Candidate{
		dancer(1, "Ava Dancer", 4.8),
		dancer(2, "Bea Dancer", 4.2),
		dancer(3, "Cam Dancer", 4.0),
		singer,
		lowRated,
	}
}

func TestEngine_SearchFiltersScoresAndPaginates(t *testing.T) {
	e := testEngine(t)

	raw := RawSearchInput{
		Skills:    []string{"dance"},
		MinRating: floatPtr(4.0),
		Page:      1,
		Limit:     2,
	}

	got, err := e.Search(searchPool(), raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Pagination.Total != 3 {
		t.Fatalf("expected 3 matches, got %d", got.Pagination.Total)
	}
	if len(got.Data) != 2 {
		t.Fatalf("expected 2 items on the first page, got %d", len(got.Data))
	}
	if !got.Pagination.HasMore {
		t.Fatalf("expected has_more true")
	}
	for _, r := range got.Data {
		if r.MatchScore < 0 || r.MatchScore > 100 {
			t.Fatalf("score %d outside [0,100]", r.MatchScore)
		}
	}
}

func TestEngine_PageBeyondResultsIsEmptyNotError(t *testing.T) {
	e := testEngine(t)

	got, err := e.Search(searchPool(), RawSearchInput{Skills: []string{"dance"}, Page: 5, Limit: 20})
	if err != nil {
		t.Fatalf("out-of-range page must not be an error, got %v", err)
	}
	if len(got.Data) != 0 {
		t.Fatalf("expected empty page, got %d items", len(got.Data))
	}
	if got.Pagination.HasMore {
		t.Fatalf("expected has_more false")
	}
	if got.Pagination.Total == 0 {
		t.Fatalf("total must still report the full match count")
	}
}

func TestEngine_SkipsMalformedCandidates(t *testing.T) {
	e := testEngine(t)

	bad := testCandidate(9)
	bad.Rating = 7.5 // outside the canonical scale
	pool := append(searchPool(), bad)

	got, err := e.Search(pool, RawSearchInput{Skills: []string{"dance"}})
	if err != nil {
		t.Fatalf("a malformed row must not abort the search: %v", err)
	}
	for _, r := range got.Data {
		if r.TalentID == bad.ID {
			t.Fatalf("malformed candidate leaked into the results")
		}
	}
}

func TestEngine_WithClockLeavesOriginalUntouched(t *testing.T) {
	base, err := NewEngine(zap.NewNop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	pinned := base.WithClock(func() time.Time { return testNow })
	if pinned == base {
		t.Fatalf("WithClock must derive a new engine, not mutate the receiver")
	}

	q, err := pinned.Normalize(RawSearchInput{Availability: "now"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !q.AvailableFrom.Equal(testNow.UTC()) {
		t.Fatalf("pinned clock not applied: window starts %v", q.AvailableFrom)
	}

	q, err = base.Normalize(RawSearchInput{Availability: "now"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if q.AvailableFrom.Equal(testNow.UTC()) {
		t.Fatalf("original engine picked up the pinned clock")
	}
}

func TestEngine_NormalizationErrorsPropagate(t *testing.T) {
	e := testEngine(t)

	_, err := e.Search(searchPool(), RawSearchInput{AgeMin: intPtr(50), AgeMax: intPtr(20)})
	if err == nil {
		t.Fatalf("expected a validation error")
	}
}

func TestEngine_Deterministic(t *testing.T) {
	e := testEngine(t)
	raw := RawSearchInput{Skills: []string{"dance"}, Availability: "this_month"}

	first, err := e.Search(searchPool(), raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := e.Search(searchPool(), raw)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first.Data) != len(second.Data) {
		t.Fatalf("result sets differ in size")
	}
	for i := range first.Data {
		if first.Data[i].TalentID != second.Data[i].TalentID ||
			first.Data[i].MatchScore != second.Data[i].MatchScore {
			t.Fatalf("results differ at %d", i)
		}
	}
}

func TestEngine_PagesPartitionResults(t *testing.T) {
	e := testEngine(t)

	full, err := e.Search(searchPool(), RawSearchInput{Limit: 100})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	var paged []MatchResult
	for page := 1; ; page++ {
		p, err := e.Search(searchPool(), RawSearchInput{Limit: 2, Page: page})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		paged = append(paged, p.Data...)
		if !p.Pagination.HasMore {
			break
		}
	}

	if len(paged) != len(full.Data) {
		t.Fatalf("expected %d items across pages, got %d", len(full.Data), len(paged))
	}
	for i := range full.Data {
		if paged[i].TalentID != full.Data[i].TalentID {
			t.Fatalf("page walk diverged at %d", i)
		}
	}
}
