package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMatchDescriptionRoleFormat(t *testing.T) {
	got := ParseMatchDescription("Expertise: AI Ethics (yours) matched Interest: AI Ethics (theirs)")

	assert.False(t, got.Generic)
	assert.Equal(t, "Expertise", got.SubjectRole)
	assert.Equal(t, "AI Ethics", got.SubjectTopic)
	assert.Equal(t, "yours", got.SubjectWhose)
	assert.Equal(t, "Interest", got.ObjectRole)
	assert.Equal(t, "AI Ethics", got.ObjectTopic)
	assert.Equal(t, "theirs", got.ObjectWhose)
}

func TestParseMatchDescriptionRoleFormatWithUserIDs(t *testing.T) {
	got := ParseMatchDescription("Interest: machine learning (alice) matched Expertise: machine learning (bob)")

	assert.False(t, got.Generic)
	assert.Equal(t, "Interest", got.SubjectRole)
	assert.Equal(t, "machine learning", got.SubjectTopic)
	assert.Equal(t, "alice", got.SubjectWhose)
	assert.Equal(t, "bob", got.ObjectWhose)
}

func TestParseMatchDescriptionArrowFormat(t *testing.T) {
	got := ParseMatchDescription("woodworking (yours) <> woodworking (theirs)")

	assert.False(t, got.Generic)
	assert.Equal(t, "Interest", got.SubjectRole)
	assert.Equal(t, "woodworking", got.SubjectTopic)
	assert.Equal(t, "yours", got.SubjectWhose)
	assert.Equal(t, "Expertise", got.ObjectRole)
	assert.Equal(t, "woodworking", got.ObjectTopic)
	assert.Equal(t, "theirs", got.ObjectWhose)
}

func TestParseMatchDescriptionMalformedFallsBack(t *testing.T) {
	for _, raw := range []string{
		"",
		"Matched on overlapping interests",
		"Interest: dangling (alice matched",
		"just some free text",
	} {
		got := ParseMatchDescription(raw)
		assert.True(t, got.Generic, "raw: %q", raw)
		assert.Equal(t, GenericExplanationText, got.DisplayText())
	}
}

func TestDisplayText(t *testing.T) {
	got := ParseMatchDescription("Interest: baking (alice) matched Expertise: baking (bob)")
	assert.Equal(t, "Interest in baking (alice) matched expertise in baking (bob)", got.DisplayText())
}
