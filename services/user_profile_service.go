package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"symbi_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// UserProfileService owns profile CRUD. Every write captures before/after
// snapshots and hands them to the match engine, which is the trigger
// contract the engine is built around.
type UserProfileService struct {
	Dynamo *DynamoService
	Engine *MatchEngineService
}

// AddUserProfile stores a new user profile and triggers match generation
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, err
	}

	if err := ups.Engine.OnProfileChange(ctx, nil, &profile, profile.UserID); err != nil {
		// The profile write itself landed; match reconciliation self-heals on
		// the next trigger.
		log.Printf("⚠️ Match generation after profile create for %s failed: %v", profile.UserID, err)
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by ID, nil when absent
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", userID, err)
	}
	return &profile, nil
}

// UpdateUserProfile replaces the mutable profile fields and triggers match
// regeneration with the before/after snapshots
func (ups *UserProfileService) UpdateUserProfile(ctx context.Context, userID string, updated models.UserProfile) (*models.UserProfile, error) {
	before, err := ups.GetUserProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if before == nil {
		return nil, fmt.Errorf("profile not found for userId: %s", userID)
	}

	updated.UserID = userID
	updated.CreatedAt = before.CreatedAt
	updated.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, updated); err != nil {
		return nil, err
	}

	if err := ups.Engine.OnProfileChange(ctx, before, &updated, userID); err != nil {
		log.Printf("⚠️ Match generation after profile update for %s failed: %v", userID, err)
	}
	return &updated, nil
}

// DeleteUserProfile removes a user profile and demotes all their matches.
// Chats survive: the engine never deletes them.
func (ups *UserProfileService) DeleteUserProfile(ctx context.Context, userID string) error {
	before, err := ups.GetUserProfile(ctx, userID)
	if err != nil {
		return err
	}

	key := map[string]types.AttributeValue{
		"userId": &types.AttributeValueMemberS{Value: userID},
	}
	if err := ups.Dynamo.DeleteItem(ctx, models.UserProfilesTable, key); err != nil {
		return err
	}

	if err := ups.Engine.OnProfileChange(ctx, before, nil, userID); err != nil {
		log.Printf("⚠️ Match sweep after profile delete for %s failed: %v", userID, err)
	}
	return nil
}
