package matching

import (
	"fmt"
	"testing"

	"cast-match/internal/domain/talent"

	"github.com/google/uuid"
)

// fixedUUID builds a stable, ordered UUID for deterministic test assertions.
func fixedUUID(n byte) uuid.UUID {
	var b [16]byte
	b[15] = n
	return uuid.UUID(b)
}

func testCandidate(n byte) Candidate {
	return Candidate{
		ID:         fixedUUID(n),
		Name:       fmt.Sprintf("talent %d", n),
		Age:        30,
		Gender:     "female",
		City:       "los angeles",
		Experience: talent.TierExperienced,
		Skills:     []string{"dance", "singing"},
		Languages:  []string{"english"},
		Rating:     4.5,
		DailyRate:  800,
		Verified:   true,
	}
}

func TestFilter_AgeBoundsInclusive(t *testing.T) {
	young := testCandidate(1)
	young.Age = 18
	exact := testCandidate(2)
	exact.Age = 25
	old := testCandidate(3)
	old.Age = 40

	got := Filter([]Candidate{young, exact, old}, SearchQuery{AgeMin: intPtr(25), AgeMax: intPtr(40)})
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	for _, c := range got {
		if c.Age < 25 || c.Age > 40 {
			t.Fatalf("candidate age %d outside bounds", c.Age)
		}
	}
}

func TestFilter_SkillsSubsetSemantics(t *testing.T) {
	full := testCandidate(1) // dance + singing
	partial := testCandidate(2)
	partial.Skills = []string{"dance"}

	got := Filter([]Candidate{full, partial}, SearchQuery{Skills: []string{"dance", "singing"}})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].ID != full.ID {
		t.Fatalf("expected the candidate holding all requested skills")
	}
}

func TestFilter_LanguagesAllRequired(t *testing.T) {
	c := testCandidate(1)
	got := Filter([]Candidate{c}, SearchQuery{Languages: []string{"english", "french"}})
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}

func TestFilter_GenderExactUnlessAny(t *testing.T) {
	c := testCandidate(1)
	if got := Filter([]Candidate{c}, SearchQuery{Gender: "male"}); len(got) != 0 {
		t.Fatalf("gender mismatch must exclude")
	}
	if got := Filter([]Candidate{c}, SearchQuery{}); len(got) != 1 {
		t.Fatalf("unset gender must not exclude")
	}
}

func TestFilter_CityExactNormalizedMatch(t *testing.T) {
	c := testCandidate(1) // los angeles
	if got := Filter([]Candidate{c}, SearchQuery{City: "los angeles"}); len(got) != 1 {
		t.Fatalf("exact normalized city must match")
	}
	// Substring semantics are deliberately not supported.
	if got := Filter([]Candidate{c}, SearchQuery{City: "angeles"}); len(got) != 0 {
		t.Fatalf("substring city must not match")
	}
}

func TestFilter_MinRating(t *testing.T) {
	low := testCandidate(1)
	low.Rating = 3.9
	high := testCandidate(2)

	got := Filter([]Candidate{low, high}, SearchQuery{MinRating: floatPtr(4.0)})
	if len(got) != 1 || got[0].ID != high.ID {
		t.Fatalf("expected only the high-rated candidate")
	}
}

func TestFilter_VerifiedOnly(t *testing.T) {
	unverified := testCandidate(1)
	unverified.Verified = false
	verified := testCandidate(2)

	got := Filter([]Candidate{unverified, verified}, SearchQuery{Verified: true})
	if len(got) != 1 || got[0].ID != verified.ID {
		t.Fatalf("expected only the verified candidate")
	}
}

func TestFilter_FreeTextMatchesNameOrSkill(t *testing.T) {
	c := testCandidate(1)
	c.Name = "Maya Chen"

	if got := Filter([]Candidate{c}, SearchQuery{FreeText: "maya"}); len(got) != 1 {
		t.Fatalf("free text must match the name case-insensitively")
	}
	if got := Filter([]Candidate{c}, SearchQuery{FreeText: "sing"}); len(got) != 1 {
		t.Fatalf("free text must match skills")
	}
	if got := Filter([]Candidate{c}, SearchQuery{FreeText: "juggling"}); len(got) != 0 {
		t.Fatalf("unmatched free text must exclude")
	}
}

func TestFilter_FreeTextCollapsesNameWhitespace(t *testing.T) {
	c := testCandidate(1)
	c.Name = "Maya  Chen"

	if got := Filter([]Candidate{c}, SearchQuery{FreeText: "maya chen"}); len(got) != 1 {
		t.Fatalf("doubled spaces in the stored name must not defeat free-text match")
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	pool := []Candidate{testCandidate(1), testCandidate(2)}
	before := pool[0].Age
	_ = Filter(pool, SearchQuery{AgeMin: intPtr(99)})
	if pool[0].Age != before || len(pool) != 2 {
		t.Fatalf("filter must not modify the input pool")
	}
}
