package telegram

import (
	"context"
	"time"

	"github.com/eldarkhamitov/country-quiz-bot/internal/domain/entities"
	"github.com/eldarkhamitov/country-quiz-bot/internal/quiz"
	"github.com/eldarkhamitov/country-quiz-bot/internal/storage"
)

type UserService interface {
	EnsureUser(ctx context.Context, userID, chatID int64, firstName, username string) (bool, error)
}

type QuizService interface {
	NewRun(ctx context.Context, userID int64) (*quiz.Session, error)
}

type CountryService interface {
	GetByID(id string) (entities.Country, error)
	ByContinent(name string) []entities.Country
	Count() int
	CountryOfDay(now time.Time) (entities.Country, error)
}

type SettingsService interface {
	GetOrCreate(ctx context.Context, userID int64) (*entities.UserSettings, error)
	SetLevelsPerRun(ctx context.Context, userID int64, levels int) error
	SetHintsEnabled(ctx context.Context, userID int64, enabled bool) error
	SetRemindersEnabled(ctx context.Context, userID int64, enabled bool) error
	SetReminderHour(ctx context.Context, userID int64, hour int) error
	SetTimezone(ctx context.Context, userID int64, timezone string) error
}

type StatsService interface {
	RecordRun(ctx context.Context, run *entities.RunResult) error
	Summary(ctx context.Context, userID int64) (*entities.RunSummary, error)
	TopStreaks(ctx context.Context, limit int) ([]entities.LeaderboardEntry, error)
}

type ResetService interface {
	ResetUser(ctx context.Context, userID int64) error
}

// SessionStorage keeps active quiz sessions and their pending auto-advances.
type SessionStorage interface {
	Store(userID int64, session *quiz.Session)
	Get(userID int64) (*quiz.Session, bool)
	Delete(userID int64)
	SetPendingAdvance(userID int64, cancel quiz.CancelFunc)
	ClearPendingAdvance(userID int64)
	CancelPendingAdvance(userID int64)
}

// ReminderStorage tracks the last nudge message per user so stale ones
// can be removed from the chat.
type ReminderStorage interface {
	UpsertAndGetPrev(userID, chatID int64, messageID int) (storage.SentReminder, bool)
	Delete(userID int64) (storage.SentReminder, bool)
}
