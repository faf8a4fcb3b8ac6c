package matching

import (
	"testing"
)

func result(n byte, score int, rec Recommendation) MatchResult {
	return MatchResult{TalentID: fixedUUID(n), MatchScore: score, Recommendation: rec}
}

func TestRank_ScoreDescending(t *testing.T) {
	in := []MatchResult{
		result(1, 40, Consider),
		result(2, 90, StronglyRecommend),
		result(3, 70, Recommend),
	}
	out := Rank(in)
	for i := 1; i < len(out); i++ {
		if out[i].MatchScore > out[i-1].MatchScore {
			t.Fatalf("not sorted descending at %d: %v", i, out)
		}
	}
	if out[0].TalentID != fixedUUID(2) {
		t.Fatalf("expected highest score first")
	}
}

func TestRank_TieBreakByRecommendationThenID(t *testing.T) {
	// Same score, different recommendation tiers.
	a := result(5, 70, Recommend)
	b := result(4, 70, Consider)
	out := Rank([]MatchResult{b, a})
	if out[0].Recommendation != Recommend {
		t.Fatalf("recommendation tier must break score ties")
	}

	// Same score and recommendation: ascending talent ID.
	c := result(9, 70, Recommend)
	d := result(2, 70, Recommend)
	out = Rank([]MatchResult{c, d})
	if out[0].TalentID != fixedUUID(2) || out[1].TalentID != fixedUUID(9) {
		t.Fatalf("expected ascending ID tie-break, got %v then %v", out[0].TalentID, out[1].TalentID)
	}
}

func TestRank_DeterministicAcrossRuns(t *testing.T) {
	in := []MatchResult{
		result(3, 70, Recommend),
		result(1, 70, Recommend),
		result(2, 70, Recommend),
		result(4, 85, StronglyRecommend),
	}
	first := Rank(in)
	second := Rank(in)
	if len(first) != len(second) {
		t.Fatalf("length mismatch")
	}
	for i := range first {
		if first[i].TalentID != second[i].TalentID {
			t.Fatalf("ordering differs at %d", i)
		}
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := []MatchResult{result(2, 10, NotSuitable), result(1, 90, StronglyRecommend)}
	_ = Rank(in)
	if in[0].TalentID != fixedUUID(2) {
		t.Fatalf("rank must not reorder its input slice")
	}
}
