package services

import (
	"context"
	"fmt"
	"strconv"

	"symbi_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MatchWrite is one staged reconciliation for a pair: the match record to
// merge plus, when the chat is provisioned for the first time, the chat and
// its system welcome message. All parts land in the same atomic batch.
type MatchWrite struct {
	Match   models.Match
	NewChat *models.Chat
	Welcome *models.Message
}

// MatchStore is the persistence boundary of the match engine. DynamoMatchStore
// is the production implementation; tests drive the engine with an in-memory one.
type MatchStore interface {
	// ListCandidateProfiles returns every profile except the excluded user's
	ListCandidateProfiles(ctx context.Context, excludeUserID string) ([]models.UserProfile, error)
	// GetMatch loads a match record by pair id, (nil, nil) when absent
	GetMatch(ctx context.Context, pairID string) (*models.Match, error)
	// MatchesForUser returns all match records the user participates in
	MatchesForUser(ctx context.Context, userID string) ([]models.Match, error)
	// CommitMatchWrites lands all staged writes atomically (all-or-nothing)
	CommitMatchWrites(ctx context.Context, writes []MatchWrite) error
	// DemoteMatches persists already-demoted match records as one batch,
	// leaving chatId untouched
	DemoteMatches(ctx context.Context, stale []models.Match) error
}

// DynamoMatchStore implements MatchStore on DynamoDB
type DynamoMatchStore struct {
	Dynamo *DynamoService
}

// ListCandidateProfiles scans the Users table, excluding the triggering user
func (s *DynamoMatchStore) ListCandidateProfiles(ctx context.Context, excludeUserID string) ([]models.UserProfile, error) {
	var profiles []models.UserProfile
	err := s.Dynamo.ScanWithFilter(ctx, models.UserProfilesTable, func(item map[string]types.AttributeValue) bool {
		if idAttr, ok := item["userId"].(*types.AttributeValueMemberS); ok {
			return idAttr.Value != excludeUserID
		}
		return false
	}, &profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidate profiles: %w", err)
	}
	return profiles, nil
}

// GetMatch loads a match record by its sorted pair id
func (s *DynamoMatchStore) GetMatch(ctx context.Context, pairID string) (*models.Match, error) {
	key := map[string]types.AttributeValue{
		"pairId": &types.AttributeValueMemberS{Value: pairID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var match models.Match
	if err := attributevalue.UnmarshalMap(item, &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match %s: %w", pairID, err)
	}
	return &match, nil
}

// MatchesForUser queries both pair-side GSIs and combines the results
func (s *DynamoMatchStore) MatchesForUser(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match

	sides := []struct {
		index     string
		attribute string
	}{
		{models.MatchUserAIndex, "userA"},
		{models.MatchUserBIndex, "userB"},
	}

	for _, side := range sides {
		items, err := s.Dynamo.QueryItemsWithIndex(
			ctx,
			models.MatchesTable,
			side.index,
			"#u = :userId",
			map[string]types.AttributeValue{
				":userId": &types.AttributeValueMemberS{Value: userID},
			},
			map[string]string{"#u": side.attribute},
			0,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to query matches for user %s: %w", userID, err)
		}

		var sideMatches []models.Match
		if err := attributevalue.UnmarshalListOfMaps(items, &sideMatches); err != nil {
			return nil, fmt.Errorf("failed to unmarshal matches for user %s: %w", userID, err)
		}
		matches = append(matches, sideMatches...)
	}

	return matches, nil
}

// CommitMatchWrites lands every staged upsert, chat, and welcome message in a
// single transactional batch. The match upsert is a merge: chatId and
// createdAt survive via if_not_exists so concurrent triggers from both sides
// of a pair converge instead of clobbering each other.
func (s *DynamoMatchStore) CommitMatchWrites(ctx context.Context, writes []MatchWrite) error {
	if len(writes) == 0 {
		return nil
	}

	var items []types.TransactWriteItem
	for _, w := range writes {
		update, err := matchUpsertItem(w.Match)
		if err != nil {
			return err
		}
		items = append(items, *update)

		if w.NewChat != nil {
			chatItem, err := attributevalue.MarshalMap(*w.NewChat)
			if err != nil {
				return fmt.Errorf("failed to marshal chat %s: %w", w.NewChat.ChatID, err)
			}
			items = append(items, types.TransactWriteItem{
				Put: &types.Put{TableName: tableNamePtr(models.ChatsTable), Item: chatItem},
			})
		}
		if w.Welcome != nil {
			messageItem, err := attributevalue.MarshalMap(*w.Welcome)
			if err != nil {
				return fmt.Errorf("failed to marshal welcome message: %w", err)
			}
			items = append(items, types.TransactWriteItem{
				Put: &types.Put{TableName: tableNamePtr(models.MessagesTable), Item: messageItem},
			})
		}
	}

	return s.Dynamo.TransactWriteItems(ctx, items)
}

// DemoteMatches commits a staleness batch. Only score, matchedOn, status and
// updatedAt change; chatId is deliberately never part of the expression.
func (s *DynamoMatchStore) DemoteMatches(ctx context.Context, stale []models.Match) error {
	if len(stale) == 0 {
		return nil
	}

	var items []types.TransactWriteItem
	for _, m := range stale {
		updateExpression := "SET score = :zero, #st = :stale, updatedAt = :ts REMOVE matchedOn"
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName: tableNamePtr(models.MatchesTable),
				Key: map[string]types.AttributeValue{
					"pairId": &types.AttributeValueMemberS{Value: m.PairID},
				},
				UpdateExpression: &updateExpression,
				ExpressionAttributeNames: map[string]string{
					"#st": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":zero":  &types.AttributeValueMemberN{Value: "0"},
					":stale": &types.AttributeValueMemberS{Value: models.MatchStatusStale},
					":ts":    &types.AttributeValueMemberS{Value: m.UpdatedAt},
				},
			},
		})
	}

	return s.Dynamo.TransactWriteItems(ctx, items)
}

// matchUpsertItem builds the merge-semantics transact update for one match
func matchUpsertItem(match models.Match) (*types.TransactWriteItem, error) {
	matchedOn := make([]types.AttributeValue, 0, len(match.MatchedOn))
	for _, d := range match.MatchedOn {
		matchedOn = append(matchedOn, &types.AttributeValueMemberS{Value: d})
	}

	if match.ChatID == nil {
		return nil, fmt.Errorf("match %s staged without a chat id", match.PairID)
	}

	updateExpression := "SET userA = :ua, userB = :ub, score = :s, matchedOn = :mo, #st = :st, " +
		"updatedAt = :ts, chatId = if_not_exists(chatId, :cid), createdAt = if_not_exists(createdAt, :ts)"

	return &types.TransactWriteItem{
		Update: &types.Update{
			TableName: tableNamePtr(models.MatchesTable),
			Key: map[string]types.AttributeValue{
				"pairId": &types.AttributeValueMemberS{Value: match.PairID},
			},
			UpdateExpression: &updateExpression,
			ExpressionAttributeNames: map[string]string{
				"#st": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":ua":  &types.AttributeValueMemberS{Value: match.UserA},
				":ub":  &types.AttributeValueMemberS{Value: match.UserB},
				":s":   &types.AttributeValueMemberN{Value: strconv.FormatFloat(match.Score, 'f', -1, 64)},
				":mo":  &types.AttributeValueMemberL{Value: matchedOn},
				":st":  &types.AttributeValueMemberS{Value: match.Status},
				":ts":  &types.AttributeValueMemberS{Value: match.UpdatedAt},
				":cid": &types.AttributeValueMemberS{Value: *match.ChatID},
			},
		},
	}, nil
}

func tableNamePtr(name string) *string {
	return &name
}
