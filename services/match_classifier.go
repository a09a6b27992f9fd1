package services

import (
	"fmt"
	"sort"
	"strings"

	"symbi_server/models"
)

// MatchClassification is the outcome of combining the two directional
// results for a pair. A nil classification means no match is recorded.
type MatchClassification struct {
	Score     float64
	Status    string
	MatchedOn []string
}

// GenericMatchDescription backs the defensive fallback branch when a pair
// qualifies on score but neither directional alignment resolved cleanly.
const GenericMatchDescription = "Matched on overlapping interests"

// ClassifyPair turns the two directional results for (userID, candidateID)
// into a match status and explanation list.
//
// dir1 is "userID learns from candidateID" (userID's interests against
// candidateID's expertise); dir2 is the reverse direction.
func ClassifyPair(dir1, dir2 *DirectionalResult, userID, candidateID string) *MatchClassification {
	finalScore := 0.0
	if dir1 != nil {
		finalScore = dir1.Score
	}
	if dir2 != nil && dir2.Score > finalScore {
		finalScore = dir2.Score
	}
	if finalScore < QualifyingScore {
		return nil
	}

	dir1Score, dir2Score := 0.0, 0.0
	if dir1 != nil {
		dir1Score = dir1.Score
	}
	if dir2 != nil {
		dir2Score = dir2.Score
	}

	switch {
	case dir1.Qualifies() && dir2.Qualifies():
		descriptions := dedupeDescriptions([]string{
			describeLearns(dir1.SourceTag, userID, dir1.CandidateTag, candidateID),
			describeLearns(dir2.CandidateTag, candidateID, dir2.SourceTag, userID),
		})
		return &MatchClassification{
			Score:     finalScore,
			Status:    models.MatchStatusSymbi,
			MatchedOn: descriptions,
		}

	case dir1.Qualifies() && dir1Score >= dir2Score:
		return &MatchClassification{
			Score:     finalScore,
			Status:    models.MatchStatusAccepted,
			MatchedOn: []string{describeLearns(dir1.SourceTag, userID, dir1.CandidateTag, candidateID)},
		}

	case dir2.Qualifies():
		return &MatchClassification{
			Score:     finalScore,
			Status:    models.MatchStatusAccepted,
			MatchedOn: []string{describeLearns(dir2.CandidateTag, candidateID, dir2.SourceTag, userID)},
		}

	default:
		// Unreachable in practice: finalScore >= threshold implies at least
		// one direction qualifies. Kept so a scoring regression degrades to a
		// generic accepted match instead of dropping the pair.
		return &MatchClassification{
			Score:     finalScore,
			Status:    models.MatchStatusAccepted,
			MatchedOn: []string{GenericMatchDescription},
		}
	}
}

// describeLearns renders one teach/learn direction: learnerID's interest tag
// aligned with teacherID's expertise tag.
func describeLearns(interestTag, learnerID, expertiseTag, teacherID string) string {
	return fmt.Sprintf("Interest: %s (%s) matched Expertise: %s (%s)",
		displayTag(interestTag), learnerID, displayTag(expertiseTag), teacherID)
}

// displayTag turns a slug back into readable text for descriptions
func displayTag(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}

// dedupeDescriptions drops case-insensitive duplicates, sorts the survivors
// so the record is identical no matter which side of the pair triggered the
// computation, and caps the list.
func dedupeDescriptions(descriptions []string) []string {
	seen := map[string]struct{}{}
	var unique []string
	for _, d := range descriptions {
		lower := strings.ToLower(d)
		if _, ok := seen[lower]; ok {
			continue
		}
		seen[lower] = struct{}{}
		unique = append(unique, d)
	}

	sort.Slice(unique, func(i, j int) bool {
		return strings.ToLower(unique[i]) < strings.ToLower(unique[j])
	})

	if len(unique) > models.MaxMatchedOn {
		unique = unique[:models.MaxMatchedOn]
	}
	return unique
}
