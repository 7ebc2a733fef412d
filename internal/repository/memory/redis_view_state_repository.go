package memory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"resumeforge-be/pkg/store"
)

const viewStateTTL = 7 * 24 * time.Hour

// RedisViewStateRepository persists view state across restarts. Used when a
// Redis address is configured; otherwise the in-process cache is used.
type RedisViewStateRepository struct {
	client *redis.Client
}

func NewRedisViewStateRepository(client *redis.Client) *RedisViewStateRepository {
	return &RedisViewStateRepository{
		client: client,
	}
}

func viewStateKey(userID string) string {
	return "viewstate:" + userID
}

func (r *RedisViewStateRepository) SaveCtx(ctx context.Context, state *store.ViewState) error {
	state.SchemaVersion = store.SchemaVersion
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, viewStateKey(state.UserID), payload, viewStateTTL).Err()
}

func (r *RedisViewStateRepository) GetCtx(ctx context.Context, userID string) (*store.ViewState, bool) {
	payload, err := r.client.Get(ctx, viewStateKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var state store.ViewState
	if err := json.Unmarshal(payload, &state); err != nil {
		r.client.Del(ctx, viewStateKey(userID))
		return nil, false
	}
	if !state.Valid() {
		// Stale schema, drop it and let the caller start fresh.
		r.client.Del(ctx, viewStateKey(userID))
		return nil, false
	}
	return &state, true
}

func (r *RedisViewStateRepository) DeleteCtx(ctx context.Context, userID string) error {
	return r.client.Del(ctx, viewStateKey(userID)).Err()
}
