package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"symbi_server/models"

	"github.com/google/uuid"
)

// DigestWindow is how fresh an unanswered message must be to queue a nudge
const DigestWindow = 24 * time.Hour

// DigestService scans chats once a day (driven by an external scheduler)
// and queues a digest email for every user who received a recent message
// and hasn't replied. Formatting and delivery belong to the mailer, not here.
type DigestService struct {
	Dynamo *DynamoService
}

// RunDailyDigest scans all chats and queues the due nudges. Returns the
// number of digests queued. Per-chat failures are logged and skipped so one
// bad record never starves the rest of the scan.
func (ds *DigestService) RunDailyDigest(ctx context.Context) (int, error) {
	var chats []models.Chat
	if err := ds.Dynamo.ScanWithFilter(ctx, models.ChatsTable, nil, &chats); err != nil {
		return 0, fmt.Errorf("digest scan failed: %w", err)
	}

	now := time.Now().UTC()
	queued := 0
	for _, chat := range chats {
		recipient, ok := NeedsDigestNudge(chat, now)
		if !ok {
			continue
		}

		digest := models.EmailDigest{
			DigestID:    uuid.NewString(),
			RecipientID: recipient,
			ChatID:      chat.ChatID,
			QueuedAt:    now.Format(time.RFC3339),
		}
		if chat.LastMessageText != nil {
			digest.Snippet = *chat.LastMessageText
		}

		if err := ds.Dynamo.PutItem(ctx, models.EmailDigestsTable, digest); err != nil {
			log.Printf("⚠️ Failed to queue digest for chat %s: %v", chat.ChatID, err)
			continue
		}
		queued++
	}

	log.Printf("✅ Daily digest run queued %d email(s) across %d chat(s)", queued, len(chats))
	return queued, nil
}

// NeedsDigestNudge decides whether a chat's recipient should be nudged: the
// most recent message must come from the counterpart, be younger than the
// digest window, and still be unanswered. System welcome messages never
// nudge. Returns the recipient's user id.
func NeedsDigestNudge(chat models.Chat, now time.Time) (string, bool) {
	if chat.LastMessageSenderID == nil || chat.LastMessageAt == nil {
		return "", false
	}
	sender := *chat.LastMessageSenderID
	if sender == models.SystemSenderID {
		return "", false
	}

	sentAt, err := time.Parse(time.RFC3339, *chat.LastMessageAt)
	if err != nil {
		return "", false
	}
	age := now.Sub(sentAt)
	if age < 0 || age >= DigestWindow {
		return "", false
	}

	for _, p := range chat.Participants {
		if p != sender {
			return p, true
		}
	}
	return "", false
}
