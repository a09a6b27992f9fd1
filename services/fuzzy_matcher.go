package services

import (
	"github.com/hbollon/go-edlib"
)

// QualifyingScore is the minimum similarity score (out of 100) for a
// directional result to count as a match. Exactly 80 qualifies.
const QualifyingScore = 100.0 * MinTagSimilarity

// MinTagSimilarity is the normalized-similarity threshold for a single
// (source tag, candidate tag) pair, equivalent to a normalized edit
// distance of at most 0.2.
const MinTagSimilarity = 0.8

// DirectionalResult is the strongest alignment found between one user's tag
// list and another's, for a single teach/learn direction.
type DirectionalResult struct {
	Score        float64 // 100 × (1 − normalized edit distance)
	SourceTag    string  // slug from the source list
	CandidateTag string  // slug from the candidate list
}

// Qualifies reports whether this direction alone is strong enough to match
func (r *DirectionalResult) Qualifies() bool {
	return r != nil && r.Score >= QualifyingScore
}

// BestAlignment computes the single best (source tag, candidate tag) pair
// across the two slug lists using levenshtein-normalized similarity. Ties
// keep the first pair encountered in source-list order. Returns nil when no
// pair reaches the similarity threshold, including when either list is empty.
func BestAlignment(sourceTags, candidateTags []string) *DirectionalResult {
	var best *DirectionalResult

	for _, src := range sourceTags {
		if src == "" {
			continue
		}
		for _, cand := range candidateTags {
			if cand == "" {
				continue
			}

			score := tagSimilarityScore(src, cand)
			if score < QualifyingScore {
				continue
			}
			// Strictly greater keeps the first-encountered pair on ties
			if best == nil || score > best.Score {
				best = &DirectionalResult{Score: score, SourceTag: src, CandidateTag: cand}
			}
		}
	}

	return best
}

// tagSimilarityScore returns 100 × (1 − dist/maxLen) for two slugs.
// A score of 0 means nothing matched at all.
func tagSimilarityScore(a, b string) float64 {
	runesA, runesB := []rune(a), []rune(b)
	maxLen := len(runesA)
	if len(runesB) > maxLen {
		maxLen = len(runesB)
	}
	if maxLen == 0 {
		return 0
	}

	dist := edlib.LevenshteinDistance(a, b)
	if dist >= maxLen {
		return 0 // not even one matched character
	}
	// 100 × (1 − dist/maxLen), kept in integer numerator form so boundary
	// scores like exactly 80 stay exact
	return 100.0 * float64(maxLen-dist) / float64(maxLen)
}
