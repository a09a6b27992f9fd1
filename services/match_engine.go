package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"symbi_server/models"

	"github.com/google/uuid"
)

// MatchEngineService reconciles match and chat state whenever a profile
// changes. Each invocation is stateless and idempotent: re-running it with
// unchanged inputs writes nothing, and concurrent invocations for the two
// sides of a pair converge through the store's merge semantics.
type MatchEngineService struct {
	Store MatchStore
}

// OnProfileChange is the engine's trigger boundary. before/after are the
// profile snapshots around the write; either may be nil (creation has no
// before, deletion has no after).
func (ms *MatchEngineService) OnProfileChange(ctx context.Context, before, after *models.UserProfile, userID string) error {
	var interests, expertise []string
	if after != nil {
		interests = NormalizeTags(after.Interests)
		expertise = NormalizeTags(after.Expertise)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	stillValid := map[string]bool{}
	var writes []MatchWrite

	// With no tags there is nothing to compute, but the sweep below still
	// runs so removing all tags demotes every existing match.
	if len(interests) > 0 || len(expertise) > 0 {
		candidates, err := ms.Store.ListCandidateProfiles(ctx, userID)
		if err != nil {
			return fmt.Errorf("match engine: %w", err)
		}

		for _, candidate := range candidates {
			if candidate.UserID == userID {
				continue // never matched against themselves
			}
			candInterests := NormalizeTags(candidate.Interests)
			candExpertise := NormalizeTags(candidate.Expertise)
			if len(candInterests) == 0 && len(candExpertise) == 0 {
				continue
			}

			dir1 := BestAlignment(interests, candExpertise) // changed user learns
			dir2 := BestAlignment(expertise, candInterests) // candidate learns
			classification := ClassifyPair(dir1, dir2, userID, candidate.UserID)
			if classification == nil {
				continue
			}

			pairID := models.PairID(userID, candidate.UserID)
			stillValid[pairID] = true

			existing, err := ms.Store.GetMatch(ctx, pairID)
			if err != nil {
				// The pair stays in the still-valid set so the sweep never
				// demotes it; the write is retried on the next trigger.
				log.Printf("❌ Critical: failed to load match %s, skipping this pair: %v", pairID, err)
				continue
			}

			if write, changed := ms.stageUpsert(existing, classification, userID, candidate.UserID, now); changed {
				writes = append(writes, write)
			}
		}
	}

	if err := ms.Store.CommitMatchWrites(ctx, writes); err != nil {
		return fmt.Errorf("match engine: upsert batch for user %s: %w", userID, err)
	}
	if len(writes) > 0 {
		log.Printf("✅ Committed %d match upsert(s) for user %s", len(writes), userID)
	}

	return ms.sweepStaleMatches(ctx, userID, stillValid, now)
}

// stageUpsert builds the staged write for one qualifying pair, provisioning
// a chat lazily. Returns changed=false when the persisted record already
// reflects the classification, which keeps repeated triggers write-free.
func (ms *MatchEngineService) stageUpsert(
	existing *models.Match,
	classification *MatchClassification,
	userID, candidateID, now string,
) (MatchWrite, bool) {
	userA, userB := models.SortPair(userID, candidateID)
	pairID := models.PairID(userID, candidateID)

	match := models.Match{
		PairID:    pairID,
		UserA:     userA,
		UserB:     userB,
		Score:     classification.Score,
		MatchedOn: classification.MatchedOn,
		Status:    classification.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var write MatchWrite
	if existing != nil && existing.ChatID != nil {
		// Idempotency guarantee: an existing chat is reused unconditionally,
		// no new chat and no new system message.
		match.ChatID = existing.ChatID
		match.CreatedAt = existing.CreatedAt

		if existing.Score == match.Score &&
			existing.Status == match.Status &&
			sameDescriptions(existing.MatchedOn, match.MatchedOn) {
			return MatchWrite{}, false
		}
	} else {
		chatID := uuid.NewString()
		match.ChatID = &chatID
		write.NewChat = &models.Chat{
			ChatID:       chatID,
			Participants: []string{userA, userB},
			CreatedAt:    now,
		}
		write.Welcome = &models.Message{
			ChatID:    chatID,
			CreatedAt: now,
			MessageID: uuid.NewString(),
			SenderID:  models.SystemSenderID,
			Content:   models.WelcomeMessageText,
		}
	}

	write.Match = match
	return write, true
}

// sweepStaleMatches demotes every match of the user that this run no longer
// supports. The sweep is its own batch: a failure here never rolls back the
// upserts, it is logged and surfaced, and the next trigger re-derives the
// full state anyway.
func (ms *MatchEngineService) sweepStaleMatches(ctx context.Context, userID string, stillValid map[string]bool, now string) error {
	existing, err := ms.Store.MatchesForUser(ctx, userID)
	if err != nil {
		log.Printf("⚠️ Staleness sweep for user %s could not load matches: %v", userID, err)
		return fmt.Errorf("match engine: staleness sweep for user %s: %w", userID, err)
	}

	var stale []models.Match
	for _, m := range existing {
		if stillValid[m.PairID] || m.Status == models.MatchStatusStale {
			continue
		}
		demoted := m
		demoted.Score = 0
		demoted.MatchedOn = nil
		demoted.Status = models.MatchStatusStale
		demoted.UpdatedAt = now
		stale = append(stale, demoted)
	}

	if len(stale) == 0 {
		return nil
	}

	if err := ms.Store.DemoteMatches(ctx, stale); err != nil {
		log.Printf("⚠️ Staleness sweep for user %s failed, will self-heal on next trigger: %v", userID, err)
		return fmt.Errorf("match engine: staleness sweep for user %s: %w", userID, err)
	}
	log.Printf("✅ Demoted %d stale match(es) for user %s", len(stale), userID)
	return nil
}

func sameDescriptions(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}
