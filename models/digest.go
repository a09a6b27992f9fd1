package models

// EmailDigest is a queued nudge for a user who hasn't replied to a recent message.
// The mailer that formats and delivers these lives outside this service.
type EmailDigest struct {
	DigestID    string `dynamodbav:"digestId" json:"digestId"` // ✅ Partition Key
	RecipientID string `dynamodbav:"recipientId" json:"recipientId"`
	ChatID      string `dynamodbav:"chatId" json:"chatId"`
	Snippet     string `dynamodbav:"snippet,omitempty" json:"snippet,omitempty"` // last message text
	QueuedAt    string `dynamodbav:"queuedAt" json:"queuedAt"`
}

// EmailDigestsTable is the DynamoDB table name for queued digest emails
const EmailDigestsTable = "EmailDigests"
