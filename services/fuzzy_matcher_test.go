package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestAlignmentExactMatch(t *testing.T) {
	result := BestAlignment([]string{"machine-learning"}, []string{"machine-learning"})
	require.NotNil(t, result)
	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, "machine-learning", result.SourceTag)
	assert.Equal(t, "machine-learning", result.CandidateTag)
}

func TestBestAlignmentPicksStrongestPair(t *testing.T) {
	result := BestAlignment(
		[]string{"gardening", "woodworking"},
		[]string{"woodworking", "gardening-tips"},
	)
	require.NotNil(t, result)
	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, "woodworking", result.SourceTag)
	assert.Equal(t, "woodworking", result.CandidateTag)
}

func TestBestAlignmentTieKeepsFirstSourceOrder(t *testing.T) {
	result := BestAlignment(
		[]string{"chess", "poker"},
		[]string{"poker", "chess"},
	)
	require.NotNil(t, result)
	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, "chess", result.SourceTag, "ties keep the first source tag encountered")
}

func TestBestAlignmentThresholdBoundary(t *testing.T) {
	// distance 1 over length 5: exactly 80, qualifies
	result := BestAlignment([]string{"abcde"}, []string{"abcdx"})
	require.NotNil(t, result)
	assert.Equal(t, 80.0, result.Score)

	// distance 1 over length 4: 75, below the threshold
	assert.Nil(t, BestAlignment([]string{"abcd"}, []string{"abcx"}))
}

func TestBestAlignmentNearMissBelowEighty(t *testing.T) {
	// distance 2 over length 9: ~77.8
	assert.Nil(t, BestAlignment([]string{"languages"}, []string{"lnguage"}))
}

func TestBestAlignmentEmptyLists(t *testing.T) {
	assert.Nil(t, BestAlignment(nil, []string{"go"}))
	assert.Nil(t, BestAlignment([]string{"go"}, nil))
	assert.Nil(t, BestAlignment(nil, nil))
}

func TestBestAlignmentToleratesTypos(t *testing.T) {
	// a transposition costs 2 edits over length 10: exactly 80
	result := BestAlignment([]string{"javascript"}, []string{"javascritp"})
	require.NotNil(t, result)
	assert.InDelta(t, 80.0, result.Score, 0.01)
}

func TestDirectionalResultQualifies(t *testing.T) {
	assert.False(t, (*DirectionalResult)(nil).Qualifies())
	assert.True(t, (&DirectionalResult{Score: 80}).Qualifies())
	assert.True(t, (&DirectionalResult{Score: 100}).Qualifies())
	assert.False(t, (&DirectionalResult{Score: 79.9}).Qualifies())
}
