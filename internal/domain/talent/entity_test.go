package talent

import "testing"

func TestParseTier_CanonicalNames(t *testing.T) {
	cases := map[string]ExperienceTier{
		"newcomer":    TierNewcomer,
		"emerging":    TierEmerging,
		"experienced": TierExperienced,
		"star":        TierStar,
	}
	for raw, want := range cases {
		got, ok := ParseTier(raw)
		if !ok {
			t.Fatalf("%s: expected parse to succeed", raw)
		}
		if got != want {
			t.Fatalf("%s: expected %v, got %v", raw, want, got)
		}
	}
}

func TestParseTier_AliasesFoldToCanonical(t *testing.T) {
	cases := map[string]ExperienceTier{
		"beginner":     TierNewcomer,
		"fresher":      TierNewcomer,
		"Intermediate": TierEmerging,
		"EXPERT":       TierExperienced,
		" veteran ":    TierStar,
	}
	for raw, want := range cases {
		got, ok := ParseTier(raw)
		if !ok {
			t.Fatalf("%s: expected parse to succeed", raw)
		}
		if got != want {
			t.Fatalf("%s: expected %v, got %v", raw, want, got)
		}
	}
}

func TestParseTier_Unknown(t *testing.T) {
	if _, ok := ParseTier("wizard"); ok {
		t.Fatalf("expected parse failure for unknown tier")
	}
}

func TestTierOrdering(t *testing.T) {
	if !(TierNewcomer < TierEmerging && TierEmerging < TierExperienced && TierExperienced < TierStar) {
		t.Fatalf("tiers must be strictly ordered")
	}
}
