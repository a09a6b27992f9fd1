package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"symbi_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ChatService serves the chat surface: the grouped inbox, message history,
// and sending messages.
type ChatService struct {
	Dynamo *DynamoService
	Store  MatchStore
}

// ChatSummary is a chat annotated with its match status for the inbox view
type ChatSummary struct {
	models.Chat
	MatchStatus string  `json:"matchStatus"` // symbi or accepted
	Counterpart string  `json:"counterpart"`
	Score       float64 `json:"score"`
}

// ChatGroups is the callable-interface response shape
type ChatGroups struct {
	Symbi    []ChatSummary `json:"symbi"`
	Accepted []ChatSummary `json:"accepted"`
}

// GetChatsForUser returns every chat the user participates in, annotated
// with match status, grouped into symbi and accepted lists, each sorted by
// most recent message first. Stale matches keep their chat and group under
// accepted.
func (s *ChatService) GetChatsForUser(ctx context.Context, userID string) (*ChatGroups, error) {
	matches, err := s.Store.MatchesForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load matches for user %s: %w", userID, err)
	}

	chats := map[string]models.Chat{}
	for _, m := range matches {
		if m.ChatID == nil {
			continue
		}
		chat, err := s.getChat(ctx, *m.ChatID)
		if err != nil {
			return nil, fmt.Errorf("failed to load chat %s: %w", *m.ChatID, err)
		}
		if chat == nil {
			log.Printf("⚠️ Match %s references missing chat %s", m.PairID, *m.ChatID)
			continue
		}
		chats[*m.ChatID] = *chat
	}

	groups := GroupChats(userID, matches, chats)
	return &groups, nil
}

// GroupChats builds the grouped, sorted inbox from already-loaded records.
// Pure; the I/O lives in GetChatsForUser.
func GroupChats(userID string, matches []models.Match, chats map[string]models.Chat) ChatGroups {
	var groups ChatGroups
	for _, m := range matches {
		if m.ChatID == nil {
			continue
		}
		chat, ok := chats[*m.ChatID]
		if !ok {
			continue
		}

		summary := ChatSummary{
			Chat:        chat,
			MatchStatus: models.MatchStatusAccepted,
			Counterpart: m.OtherUser(userID),
			Score:       m.Score,
		}
		if m.Status == models.MatchStatusSymbi {
			summary.MatchStatus = models.MatchStatusSymbi
			groups.Symbi = append(groups.Symbi, summary)
		} else {
			groups.Accepted = append(groups.Accepted, summary)
		}
	}

	sortByRecency(groups.Symbi)
	sortByRecency(groups.Accepted)
	return groups
}

// sortByRecency orders chats newest message first; chats that never had a
// message sort by creation time.
func sortByRecency(chats []ChatSummary) {
	sort.SliceStable(chats, func(i, j int) bool {
		return lastActivity(chats[i]) > lastActivity(chats[j])
	})
}

func lastActivity(c ChatSummary) string {
	if c.LastMessageAt != nil {
		return *c.LastMessageAt
	}
	return c.CreatedAt
}

func (s *ChatService) getChat(ctx context.Context, chatID string) (*models.Chat, error) {
	key := map[string]types.AttributeValue{
		"chatId": &types.AttributeValueMemberS{Value: chatID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.ChatsTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var chat models.Chat
	if err := attributevalue.UnmarshalMap(item, &chat); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chat %s: %w", chatID, err)
	}
	return &chat, nil
}

// SendMessage appends a message and refreshes the chat's last-message fields
func (s *ChatService) SendMessage(ctx context.Context, message models.Message) error {
	if err := s.Dynamo.PutItem(ctx, models.MessagesTable, message); err != nil {
		return fmt.Errorf("failed to store message: %w", err)
	}

	updateExpression := "SET lastMessageText = :text, lastMessageSenderId = :sender, lastMessageAt = :ts"
	_, err := s.Dynamo.UpdateItem(ctx, models.ChatsTable, updateExpression,
		map[string]types.AttributeValue{
			"chatId": &types.AttributeValueMemberS{Value: message.ChatID},
		},
		map[string]types.AttributeValue{
			":text":   &types.AttributeValueMemberS{Value: message.Content},
			":sender": &types.AttributeValueMemberS{Value: message.SenderID},
			":ts":     &types.AttributeValueMemberS{Value: message.CreatedAt},
		}, nil,
	)
	if err != nil {
		return fmt.Errorf("failed to update chat last message: %w", err)
	}
	return nil
}

// GetMessagesByChatID fetches messages for a chat, newest first
func (s *ChatService) GetMessagesByChatID(ctx context.Context, chatID string, limit int) ([]models.Message, error) {
	keyCondition := "#chatId = :chatId"
	items, err := s.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition,
		map[string]types.AttributeValue{
			":chatId": &types.AttributeValueMemberS{Value: chatID},
		},
		map[string]string{"#chatId": "chatId"},
		int32(limit),
		true, // latest first
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	var messages []models.Message
	if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}
	return messages, nil
}
