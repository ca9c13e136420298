package intelligence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carebridge/models"
	"carebridge/utils"

	"github.com/go-redis/redis/v8"
)

const (
	contextTTL      = 30 * time.Minute
	maxContextTurns = 10
)

// loadTurns reads the recent conversation for a user; an empty context is
// not an error.
func loadTurns(ctx context.Context, userID string) ([]models.AdvisorTurn, error) {
	data, err := utils.GetAdvisorCacheClient().Get(ctx, contextKey(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read advisor context: %w", err)
	}
	var turns []models.AdvisorTurn
	if err := json.Unmarshal([]byte(data), &turns); err != nil {
		return nil, fmt.Errorf("failed to parse advisor context: %w", err)
	}
	return turns, nil
}

// saveTurns stores the conversation, keeping only the most recent turns.
func saveTurns(ctx context.Context, userID string, turns []models.AdvisorTurn) error {
	if len(turns) > maxContextTurns {
		turns = turns[len(turns)-maxContextTurns:]
	}
	data, err := json.Marshal(turns)
	if err != nil {
		return fmt.Errorf("failed to marshal advisor context: %w", err)
	}
	if err := utils.GetAdvisorCacheClient().Set(ctx, contextKey(userID), data, contextTTL).Err(); err != nil {
		return fmt.Errorf("failed to store advisor context: %w", err)
	}
	return nil
}

func clearTurns(ctx context.Context, userID string) error {
	if err := utils.GetAdvisorCacheClient().Del(ctx, contextKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to clear advisor context: %w", err)
	}
	return nil
}

func contextKey(userID string) string {
	return "advisor:" + userID
}
