package ranker

import (
	"sort"

	"docqa/internal/domain"
)

// Rank scores every segment and returns up to topK segments with a positive score,
// best first. Equal scores keep document order. A non-positive topK selects 1.
// When nothing matches the result is empty.
func Rank(segments []domain.Segment, tokens []string, topK int, policy MatchPolicy) domain.RankedResult {
	if topK <= 0 {
		topK = 1
	}
	if policy == "" {
		policy = MatchSubstring
	}
	scored := make([]domain.ScoredSegment, 0, len(segments))
	for _, seg := range segments {
		if s := policy.Score(tokens, seg); s > 0 {
			scored = append(scored, domain.ScoredSegment{Segment: seg, Score: s})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })
	if len(scored) > topK {
		scored = scored[:topK]
	}
	return domain.RankedResult(scored)
}
