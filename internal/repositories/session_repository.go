package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"caelio/internal/models/quiz_models"
	"caelio/pkg/utils"
)

// SessionTTL is how long an idle quiz session survives.
const SessionTTL = 30 * time.Minute

type SessionRepositoryInterface interface {
	Save(ctx context.Context, session *quiz_models.QuizSession) error
	Get(ctx context.Context, id string) (*quiz_models.QuizSession, error)
	Delete(ctx context.Context, id string) error
}

// RedisSessionRepository keeps quiz sessions in redis under "quiz:<id>",
// serialized as JSON with a rolling TTL.
type RedisSessionRepository struct {
	client *redis.Client
}

func NewRedisSessionRepository(client *redis.Client) SessionRepositoryInterface {
	return &RedisSessionRepository{client: client}
}

func (r *RedisSessionRepository) key(id string) string {
	return "quiz:" + id
}

func (r *RedisSessionRepository) Save(ctx context.Context, session *quiz_models.QuizSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return utils.ErrStoreError
	}
	if err := r.client.Set(ctx, r.key(session.ID), data, SessionTTL).Err(); err != nil {
		return utils.ErrStoreError
	}
	return nil
}

func (r *RedisSessionRepository) Get(ctx context.Context, id string) (*quiz_models.QuizSession, error) {
	data, err := r.client.Get(ctx, r.key(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, utils.ErrSessionNotFound
		}
		return nil, utils.ErrStoreError
	}
	var session quiz_models.QuizSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, utils.ErrStoreError
	}
	return &session, nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		return utils.ErrStoreError
	}
	return nil
}
