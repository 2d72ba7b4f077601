package repositories

import (
	"context"

	"caelio/internal/models/quiz_models"
	"caelio/pkg/memcache"
	"caelio/pkg/utils"
)

// MemorySessionRepository adapts the in-process TTL store to the session
// repository interface. Default when REDIS_URL is unset.
type MemorySessionRepository struct {
	store *memcache.QuizSessions
}

func NewMemorySessionRepository() SessionRepositoryInterface {
	return &MemorySessionRepository{
		store: memcache.NewQuizSessions(SessionTTL),
	}
}

func (r *MemorySessionRepository) Save(_ context.Context, session *quiz_models.QuizSession) error {
	r.store.Set(session.ID, *session)
	return nil
}

func (r *MemorySessionRepository) Get(_ context.Context, id string) (*quiz_models.QuizSession, error) {
	session, ok := r.store.Get(id)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return &session, nil
}

func (r *MemorySessionRepository) Delete(_ context.Context, id string) error {
	r.store.Delete(id)
	return nil
}
