package storage

import (
	"sync"
	"time"
)

// SentReminder records the last daily nudge delivered to a user so the
// next one can remove it instead of piling up in the chat.
type SentReminder struct {
	ChatID    int64
	MessageID int
	SentAt    time.Time
}

type ReminderStore struct {
	mu   sync.RWMutex
	sent map[int64]SentReminder
}

func NewReminderStore() *ReminderStore {
	return &ReminderStore{
		sent: make(map[int64]SentReminder),
	}
}

// UpsertAndGetPrev stores the just-sent nudge and returns the previous
// one, if any, so the caller can delete it from the chat.
func (s *ReminderStore) UpsertAndGetPrev(userID, chatID int64, messageID int) (prev SentReminder, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.sent[userID]
	s.sent[userID] = SentReminder{
		ChatID:    chatID,
		MessageID: messageID,
		SentAt:    time.Now(),
	}
	return prev, hadPrev
}

// Delete forgets the user's last nudge, e.g. after reminders are
// switched off.
func (s *ReminderStore) Delete(userID int64) (SentReminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok := s.sent[userID]
	delete(s.sent, userID)
	return prev, ok
}
