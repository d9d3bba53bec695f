package storage

import (
	"sync"

	"github.com/ndquang/vocab-trainer/internal/domain/entities"
)

// SessionStorage provides in-memory storage for practice sessions keyed
// by chat ID. Sessions are ephemeral: they exist only while a quiz run is
// in progress.
type SessionStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.PracticeSession
}

// NewSessionStorage creates a new SessionStorage.
func NewSessionStorage() *SessionStorage {
	return &SessionStorage{
		sessions: make(map[int64]*entities.PracticeSession),
	}
}

// Store saves the session for a chat, replacing any previous one.
func (s *SessionStorage) Store(chatID int64, session *entities.PracticeSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = session
}

// Get retrieves the session for a chat, or nil when none is running.
func (s *SessionStorage) Get(chatID int64) *entities.PracticeSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[chatID]
}

// Delete removes the session for a chat.
func (s *SessionStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
