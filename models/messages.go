package models

// Message is an append-only chat message. Never mutated or deleted.
type Message struct {
	ChatID    string `dynamodbav:"chatId" json:"chatId"`       // ✅ Partition Key
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"` // ✅ Sort Key
	MessageID string `dynamodbav:"messageId" json:"messageId"`
	SenderID  string `dynamodbav:"senderId" json:"senderId"` // user id or "system"
	Content   string `dynamodbav:"content" json:"content"`
}

// SystemSenderID marks messages authored by the platform itself
const SystemSenderID = "system"

// WelcomeMessageText is appended once when a chat is provisioned for a new match
const WelcomeMessageText = "You've been matched based on shared interests!"

// MessagesTable is the DynamoDB table name for chat messages
const MessagesTable = "Messages"
