package services

import (
	"testing"
	"time"

	"symbi_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digestChat(sender, sentAt string) models.Chat {
	return models.Chat{
		ChatID:              "chat-1",
		Participants:        []string{"alice", "bob"},
		LastMessageSenderID: &sender,
		LastMessageAt:       &sentAt,
		LastMessageText:     strPtr("hey, did you see this?"),
		CreatedAt:           "2026-08-01T00:00:00Z",
	}
}

func TestNeedsDigestNudgeRecentUnanswered(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	chat := digestChat("bob", now.Add(-2*time.Hour).Format(time.RFC3339))

	recipient, ok := NeedsDigestNudge(chat, now)
	require.True(t, ok)
	assert.Equal(t, "alice", recipient, "the nudge goes to the participant who hasn't replied")
}

func TestNeedsDigestNudgeIgnoresOldMessages(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	chat := digestChat("bob", now.Add(-25*time.Hour).Format(time.RFC3339))

	_, ok := NeedsDigestNudge(chat, now)
	assert.False(t, ok)
}

func TestNeedsDigestNudgeExactWindowBoundary(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	chat := digestChat("bob", now.Add(-DigestWindow).Format(time.RFC3339))

	_, ok := NeedsDigestNudge(chat, now)
	assert.False(t, ok, "a message exactly 24h old is no longer 'less than 24 hours'")
}

func TestNeedsDigestNudgeIgnoresSystemMessages(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	chat := digestChat(models.SystemSenderID, now.Add(-1*time.Hour).Format(time.RFC3339))

	_, ok := NeedsDigestNudge(chat, now)
	assert.False(t, ok)
}

func TestNeedsDigestNudgeIgnoresQuietChats(t *testing.T) {
	now := time.Now().UTC()
	chat := models.Chat{
		ChatID:       "chat-1",
		Participants: []string{"alice", "bob"},
		CreatedAt:    "2026-08-01T00:00:00Z",
	}

	_, ok := NeedsDigestNudge(chat, now)
	assert.False(t, ok)
}

func TestNeedsDigestNudgeMalformedTimestamp(t *testing.T) {
	now := time.Now().UTC()
	chat := digestChat("bob", "not-a-timestamp")

	_, ok := NeedsDigestNudge(chat, now)
	assert.False(t, ok)
}
