// pkg/memcache/quiz_sessions.go
package memcache

import (
	"sync"
	"time"

	"caelio/internal/models/quiz_models"
)

// QuizSessions is an in-process TTL store for quiz sessions, used when no
// redis is configured. Safe for concurrent use.
type QuizSessions struct {
	mu   sync.RWMutex
	data map[string]entry
	ttl  time.Duration
	// optional: a background janitor could be added if you want
}

type entry struct {
	session   quiz_models.QuizSession
	expiresAt time.Time
}

func NewQuizSessions(ttl time.Duration) *QuizSessions {
	return &QuizSessions{
		data: make(map[string]entry),
		ttl:  ttl,
	}
}

func (s *QuizSessions) Set(id string, session quiz_models.QuizSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = entry{
		session:   session,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Get returns the session if present and not expired. Expired sessions are
// cleaned up on access.
func (s *QuizSessions) Get(id string) (quiz_models.QuizSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[id]
	if !ok {
		return quiz_models.QuizSession{}, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, id) // cleanup expired
		return quiz_models.QuizSession{}, false
	}
	return e.session, true
}

func (s *QuizSessions) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, id)
}
