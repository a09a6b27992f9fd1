package models

import "strings"

// Match represents a pairwise match record between two users.
// Exactly one record exists per unordered pair: the key is the sorted pair id.
type Match struct {
	PairID    string   `dynamodbav:"pairId" json:"pairId"` // ✅ Partition Key: "<userA>_<userB>" with userA < userB
	UserA     string   `dynamodbav:"userA" json:"userA"`
	UserB     string   `dynamodbav:"userB" json:"userB"`
	Score     float64  `dynamodbav:"score" json:"score"`                           // 0-100, best directional similarity
	MatchedOn []string `dynamodbav:"matchedOn,omitempty" json:"matchedOn"`         // Human-readable explanations, at most 5
	ChatID    *string  `dynamodbav:"chatId,omitempty" json:"chatId,omitempty"`     // Set once, never cleared or changed
	Status    string   `dynamodbav:"status" json:"status"`                         // accepted, symbi, stale_interest
	CreatedAt string   `dynamodbav:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt string   `dynamodbav:"updatedAt" json:"updatedAt"`
}

// Match statuses
const (
	MatchStatusAccepted = "accepted"       // one-directional qualifying match
	MatchStatusSymbi    = "symbi"          // both users teach each other something
	MatchStatusStale    = "stale_interest" // no longer supported by current profile data
)

// MaxMatchedOn caps the matchedOn description list
const MaxMatchedOn = 5

// PairID builds the canonical sorted pair key for two user ids
func PairID(userA, userB string) string {
	if strings.Compare(userA, userB) > 0 {
		userA, userB = userB, userA
	}
	return userA + "_" + userB
}

// SortPair returns the two user ids in canonical order
func SortPair(userA, userB string) (string, string) {
	if strings.Compare(userA, userB) > 0 {
		return userB, userA
	}
	return userA, userB
}

// OtherUser returns the counterpart of the given user in this match
func (m *Match) OtherUser(userID string) string {
	if m.UserA == userID {
		return m.UserB
	}
	return m.UserA
}

// MatchesTable is the DynamoDB table name for match records
const MatchesTable = "Matches"

// GSIs for querying all matches a user participates in (as either side of the pair)
const (
	MatchUserAIndex = "userA-index"
	MatchUserBIndex = "userB-index"
)
