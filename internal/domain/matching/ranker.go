package matching

import (
	"sort"
	"strings"
)

// Rank orders results for presentation: match score descending, then
// recommendation tier, then talent ID ascending. The ID tie-break makes the
// ordering fully deterministic, which pagination stability depends on. The
// input slice is not modified.
func Rank(results []MatchResult) []MatchResult {
	out := make([]MatchResult, len(results))
	copy(out, results)

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchScore != out[j].MatchScore {
			return out[i].MatchScore > out[j].MatchScore
		}
		ri, rj := recommendationRank(out[i].Recommendation), recommendationRank(out[j].Recommendation)
		if ri != rj {
			return ri > rj
		}
		return strings.Compare(out[i].TalentID.String(), out[j].TalentID.String()) < 0
	})

	return out
}
