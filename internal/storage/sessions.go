// Package storage holds in-memory state that lives for the lifetime of
// the process: active quiz sessions and reminder bookkeeping.
package storage

import (
	"sync"

	"github.com/eldarkhamitov/country-quiz-bot/internal/quiz"
)

// SessionStore keeps the active quiz session per user together with
// the cancel handle of a scheduled auto-advance. Replacing or deleting
// a session always cancels its pending advance so a stale timer cannot
// touch the new run.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*quiz.Session
	pending  map[int64]quiz.CancelFunc
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*quiz.Session),
		pending:  make(map[int64]quiz.CancelFunc),
	}
}

// Store replaces the user's session.
func (s *SessionStore) Store(userID int64, session *quiz.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked(userID)
	s.sessions[userID] = session
}

func (s *SessionStore) Get(userID int64) (*quiz.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	return session, ok
}

// Delete drops the user's session.
func (s *SessionStore) Delete(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked(userID)
	delete(s.sessions, userID)
}

// SetPendingAdvance remembers the cancel handle for a scheduled
// advance, cancelling any previous one first.
func (s *SessionStore) SetPendingAdvance(userID int64, cancel quiz.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked(userID)
	s.pending[userID] = cancel
}

// ClearPendingAdvance forgets the handle without cancelling it, for
// use from the fired timer itself.
func (s *SessionStore) ClearPendingAdvance(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, userID)
}

// CancelPendingAdvance stops the scheduled advance if one exists.
func (s *SessionStore) CancelPendingAdvance(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked(userID)
}

func (s *SessionStore) cancelLocked(userID int64) {
	if cancel, ok := s.pending[userID]; ok {
		cancel()
		delete(s.pending, userID)
	}
}
