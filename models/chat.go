package models

// Chat represents a conversation between two matched users.
// Created exactly once per match and never deleted by the match engine.
type Chat struct {
	ChatID              string   `dynamodbav:"chatId" json:"chatId"` // ✅ Partition Key
	Participants        []string `dynamodbav:"participants" json:"participants"`
	LastMessageText     *string  `dynamodbav:"lastMessageText,omitempty" json:"lastMessageText,omitempty"`
	LastMessageSenderID *string  `dynamodbav:"lastMessageSenderId,omitempty" json:"lastMessageSenderId,omitempty"`
	LastMessageAt       *string  `dynamodbav:"lastMessageAt,omitempty" json:"lastMessageAt,omitempty"`
	CreatedAt           string   `dynamodbav:"createdAt" json:"createdAt"`
}

// HasParticipant reports whether the user takes part in this chat
func (c *Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

// ChatsTable is the DynamoDB table name for chats
const ChatsTable = "Chats"
