package services

import (
	"testing"

	"symbi_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyPairBelowThreshold(t *testing.T) {
	assert.Nil(t, ClassifyPair(nil, nil, "a", "b"))
	assert.Nil(t, ClassifyPair(
		&DirectionalResult{Score: 79, SourceTag: "go", CandidateTag: "gox"},
		nil, "a", "b"))
}

func TestClassifyPairOneDirectionAccepted(t *testing.T) {
	dir1 := &DirectionalResult{Score: 100, SourceTag: "machine-learning", CandidateTag: "machine-learning"}

	got := ClassifyPair(dir1, nil, "alice", "bob")
	require.NotNil(t, got)
	assert.Equal(t, models.MatchStatusAccepted, got.Status)
	assert.Equal(t, 100.0, got.Score)
	assert.Equal(t, []string{
		"Interest: machine learning (alice) matched Expertise: machine learning (bob)",
	}, got.MatchedOn)
}

func TestClassifyPairReverseDirectionAccepted(t *testing.T) {
	// Only the candidate learns: dir2's source list is the changed user's
	// expertise, so the description flips learner and teacher.
	dir2 := &DirectionalResult{Score: 90, SourceTag: "pottery", CandidateTag: "pottery-basics"}

	got := ClassifyPair(nil, dir2, "alice", "bob")
	require.NotNil(t, got)
	assert.Equal(t, models.MatchStatusAccepted, got.Status)
	assert.Equal(t, 90.0, got.Score)
	assert.Equal(t, []string{
		"Interest: pottery basics (bob) matched Expertise: pottery (alice)",
	}, got.MatchedOn)
}

func TestClassifyPairSymbi(t *testing.T) {
	dir1 := &DirectionalResult{Score: 100, SourceTag: "quantum-computing", CandidateTag: "quantum-computing"}
	dir2 := &DirectionalResult{Score: 100, SourceTag: "ai-ethics", CandidateTag: "ai-ethics"}

	got := ClassifyPair(dir1, dir2, "alice", "bob")
	require.NotNil(t, got)
	assert.Equal(t, models.MatchStatusSymbi, got.Status)
	assert.Equal(t, []string{
		"Interest: ai ethics (bob) matched Expertise: ai ethics (alice)",
		"Interest: quantum computing (alice) matched Expertise: quantum computing (bob)",
	}, got.MatchedOn)
}

func TestClassifyPairSymbiDeduplicatesIdenticalDescriptions(t *testing.T) {
	// Both directions align the same tag between the same two users
	dir1 := &DirectionalResult{Score: 100, SourceTag: "chess", CandidateTag: "chess"}
	dir2 := &DirectionalResult{Score: 100, SourceTag: "chess", CandidateTag: "chess"}

	got := ClassifyPair(dir1, dir2, "alice", "bob")
	require.NotNil(t, got)
	assert.Equal(t, models.MatchStatusSymbi, got.Status)
	// "Interest: chess (alice) matched Expertise: chess (bob)" and its mirror
	// differ (the learner differs), so both survive
	assert.Len(t, got.MatchedOn, 2)
}

func TestClassifyPairSymbiDescriptionOrderIsTriggerIndependent(t *testing.T) {
	dir1 := &DirectionalResult{Score: 100, SourceTag: "zymurgy", CandidateTag: "zymurgy"}
	dir2 := &DirectionalResult{Score: 100, SourceTag: "astronomy", CandidateTag: "astronomy"}

	fromAlice := ClassifyPair(dir1, dir2, "alice", "bob")
	// Mirror invocation: bob triggered, directions swap roles
	mirrorDir1 := &DirectionalResult{Score: 100, SourceTag: "astronomy", CandidateTag: "astronomy"}
	mirrorDir2 := &DirectionalResult{Score: 100, SourceTag: "zymurgy", CandidateTag: "zymurgy"}
	fromBob := ClassifyPair(mirrorDir1, mirrorDir2, "bob", "alice")

	require.NotNil(t, fromAlice)
	require.NotNil(t, fromBob)
	assert.Equal(t, fromAlice.MatchedOn, fromBob.MatchedOn)
}

func TestClassifyPairStrongerDirectionWinsWhenOnlyOneQualifies(t *testing.T) {
	dir1 := &DirectionalResult{Score: 85, SourceTag: "baking", CandidateTag: "bakingx"}
	dir2 := &DirectionalResult{Score: 60, SourceTag: "sewing", CandidateTag: "sewinggggg"}

	got := ClassifyPair(dir1, dir2, "alice", "bob")
	require.NotNil(t, got)
	assert.Equal(t, models.MatchStatusAccepted, got.Status)
	assert.Equal(t, 85.0, got.Score)
	require.Len(t, got.MatchedOn, 1)
	assert.Contains(t, got.MatchedOn[0], "baking (alice)")
}

func TestClassifyPairCapsDescriptions(t *testing.T) {
	got := dedupeDescriptions([]string{"a", "b", "c", "d", "e", "f", "g"})
	assert.Len(t, got, models.MaxMatchedOn)
}
