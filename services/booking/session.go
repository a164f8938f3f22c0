package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"petclinic/models"
	"petclinic/utils"
)

const sessionKeyPrefix = "booking:session:"
const submitLockPrefix = "booking:submit:"

// SessionStore keeps in-progress reservation drafts in Redis. A draft lives
// under its session ID for utils.DraftSessionTTL and disappears on its own
// when the user walks away; nothing is ever persisted server-side for an
// unfinished wizard.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore wraps the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save writes the draft back under its session ID, refreshing the TTL.
func (s *SessionStore) Save(ctx context.Context, draft *models.ReservationDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		utils.GetLogger().Error("Failed to marshal reservation draft", zap.Error(err))
		return fmt.Errorf("failed to marshal reservation draft: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+draft.SessionID, data, utils.DraftSessionTTL).Err(); err != nil {
		utils.GetLogger().Error("Failed to save reservation draft",
			zap.String("sessionID", draft.SessionID), zap.Error(err))
		return fmt.Errorf("failed to save reservation draft: %w", err)
	}
	return nil
}

// Get loads the draft for the session, or ErrSessionNotFound.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*models.ReservationDraft, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load reservation draft: %w", err)
	}
	var draft models.ReservationDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse reservation draft: %w", err)
	}
	return &draft, nil
}

// Delete discards the draft.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to discard reservation draft: %w", err)
	}
	return nil
}

// AcquireSubmitLock takes the per-session submit lock. It returns false when
// another confirmation for the same session is already in flight.
func (s *SessionStore) AcquireSubmitLock(ctx context.Context, sessionID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, submitLockPrefix+sessionID, "1", utils.SubmitLockTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	return ok, nil
}

// ReleaseSubmitLock frees the submit lock once the confirmation finished.
func (s *SessionStore) ReleaseSubmitLock(ctx context.Context, sessionID string) {
	if err := s.client.Del(ctx, submitLockPrefix+sessionID).Err(); err != nil {
		utils.GetLogger().Warn("Failed to release submit lock",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}
